package dashboarding

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/storefront-dashboard-api/infrastructure/integrator/payload/payloadclient"
	"github.com/vfg2006/storefront-dashboard-api/pkg/apiErrors"
)

var (
	// Erros de validação
	ErrIDRequired         = errors.New("document ID is required")
	ErrInvalidID          = errors.New("invalid document ID")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrInvalidProduct     = errors.New("invalid product data")

	// Erros do Payload
	ErrNotFound      = errors.New("document not found")
	ErrWriteRejected = errors.New("write rejected by the store")
	ErrStoreFailure  = errors.New("store unavailable")

	ErrGenerateSKU = errors.New("error generating SKU")
)

// DashboardError é um erro com contexto adicional para as operações do painel
type DashboardError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	Operation string // Operação que falhou
	ID        string // ID do documento envolvido (quando aplicável)
	Details   string // Detalhes adicionais
	Cause     error  // Erro original do Payload ou do validador
}

func (e *DashboardError) Error() string {
	parts := []string{e.Operation, e.Err.Error()}
	if e.Details != "" {
		parts = append(parts, e.Details)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap permite errors.Is tanto com o sentinel quanto com o erro original
func (e *DashboardError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func NewDashboardError(err error, code, operation, details string) *DashboardError {
	return &DashboardError{
		Err:       err,
		Code:      code,
		Operation: operation,
		Details:   details,
	}
}

// fromStoreError classifica uma falha do Payload: ID inutilizável é erro de formato, 404 vira
// não encontrado, outro status fora de 2xx é uma escrita recusada e o restante (rede, resposta
// inválida) falha de comunicação
func fromStoreError(operation, id string, err error) *DashboardError {
	dashErr := &DashboardError{
		Operation: operation,
		ID:        id,
		Cause:     err,
	}

	var statusErr *payloadclient.StatusError
	switch {
	case errors.Is(err, payloadclient.ErrInvalidID):
		dashErr.Err = ErrInvalidID
		dashErr.Code = apiErrors.ErrInvalidFormat
	case payloadclient.IsNotFound(err):
		dashErr.Err = ErrNotFound
		dashErr.Code = apiErrors.ErrNotFound
		dashErr.Details = fmt.Sprintf("id %s", id)
	case errors.As(err, &statusErr):
		dashErr.Err = ErrWriteRejected
		dashErr.Code = apiErrors.ErrWriteRejected
	default:
		dashErr.Err = ErrStoreFailure
		dashErr.Code = apiErrors.ErrCommunication
	}

	return dashErr
}
