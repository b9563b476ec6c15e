package dashboarding

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/storefront-dashboard-api/internal/domain"
	"github.com/vfg2006/storefront-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/storefront-dashboard-api/pkg/log"
)

func (s *Service) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	const operation = "updateOrderStatus"

	err := s.validate.Struct(domain.UpdateOrderStatusRequest{ID: id, Status: status})
	if err != nil {
		if id == "" {
			return NewDashboardError(ErrIDRequired, apiErrors.ErrMissingRequiredData, operation, "")
		}
		return NewDashboardError(ErrInvalidOrderStatus, apiErrors.ErrInvalidStatus, operation, string(status))
	}

	if err := s.payloadService.UpdateOrderStatus(ctx, id, status); err != nil {
		return s.writeFailed(ctx, operation, id, err)
	}

	log.ForContext(ctx).WithFields(log.Fields{"order_id": id, "status": status}).Info("order status updated")
	return nil
}

// CreateProduct valida a entrada e gera um SKU quando nenhum foi informado
func (s *Service) CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.Product, error) {
	const operation = "createProduct"

	if err := s.validate.Struct(input); err != nil {
		return nil, invalidProduct(operation, err)
	}

	if input.SKU == "" {
		sku, err := s.generateSKU()
		if err != nil {
			return nil, &DashboardError{Err: ErrGenerateSKU, Code: apiErrors.ErrInternalServer, Operation: operation, Cause: err}
		}
		input.SKU = sku
	}

	product, err := s.payloadService.CreateProduct(ctx, input)
	if err != nil {
		return nil, s.writeFailed(ctx, operation, "", err)
	}

	log.ForContext(ctx).WithFields(log.Fields{"product_id": product.ID, "sku": product.SKU}).Info("product created")
	return product, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	const operation = "updateProduct"

	if id == "" {
		return nil, NewDashboardError(ErrIDRequired, apiErrors.ErrMissingRequiredData, operation, "")
	}

	if patch.IsEmpty() {
		return nil, NewDashboardError(ErrInvalidProduct, apiErrors.ErrInvalidRequest, operation, "no fields to update")
	}

	if err := s.validate.Struct(patch); err != nil {
		return nil, invalidProduct(operation, err)
	}

	product, err := s.payloadService.UpdateProduct(ctx, id, patch)
	if err != nil {
		return nil, s.writeFailed(ctx, operation, id, err)
	}

	log.ForContext(ctx).WithField("product_id", id).Info("product updated")
	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	const operation = "deleteProduct"

	if id == "" {
		return NewDashboardError(ErrIDRequired, apiErrors.ErrMissingRequiredData, operation, "")
	}

	if err := s.payloadService.DeleteProduct(ctx, id); err != nil {
		return s.writeFailed(ctx, operation, id, err)
	}

	log.ForContext(ctx).WithField("product_id", id).Info("product deleted")
	return nil
}

func (s *Service) writeFailed(ctx context.Context, operation, id string, err error) *DashboardError {
	dashErr := fromStoreError(operation, id, err)

	log.ForContext(ctx).
		WithFields(log.Fields{"operation": operation, "id": id, "code": dashErr.Code}).
		WithError(err).
		Error("dashboard: write failed")

	return dashErr
}

func invalidProduct(operation string, err error) *DashboardError {
	dashErr := &DashboardError{
		Err:       ErrInvalidProduct,
		Code:      apiErrors.ErrInvalidRequest,
		Operation: operation,
		Cause:     err,
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		dashErr.Details = validationErrs[0].Field()
	}

	return dashErr
}
