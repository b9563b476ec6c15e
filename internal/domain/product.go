package domain

type Product struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	SKU            string     `json:"sku"`
	Price          float64    `json:"price"`
	InventoryCount int        `json:"inventory_count"`
	IsActive       bool       `json:"is_active"`
	Tags           []string   `json:"tags"`
	Category       *Reference `json:"category,omitempty"`
}

// ProductInput representa os dados de criação de um produto, com preço em unidade de exibição
type ProductInput struct {
	Name           string   `json:"name" validate:"required,max=255"`
	SKU            string   `json:"sku" validate:"omitempty,max=64"`
	Price          float64  `json:"price" validate:"gte=0"`
	InventoryCount int      `json:"inventory_count" validate:"gte=0"`
	IsActive       *bool    `json:"is_active"`
	Tags           []string `json:"tags" validate:"omitempty,dive,required"`
	Category       string   `json:"category"`
}

// ProductPatch contém apenas os campos informados; preço ausente não é enviado ao Payload
type ProductPatch struct {
	Name           *string   `json:"name" validate:"omitempty,min=1,max=255"`
	SKU            *string   `json:"sku" validate:"omitempty,min=1,max=64"`
	Price          *float64  `json:"price" validate:"omitempty,gte=0"`
	InventoryCount *int      `json:"inventory_count" validate:"omitempty,gte=0"`
	IsActive       *bool     `json:"is_active"`
	Tags           *[]string `json:"tags"`
	Category       *string   `json:"category"`
}

// IsEmpty indica se o patch não altera nenhum campo
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.SKU == nil && p.Price == nil && p.InventoryCount == nil &&
		p.IsActive == nil && p.Tags == nil && p.Category == nil
}
