package service

import (
	"context"
	"fmt"

	"github.com/Group-A-SPU-Advance-database-2024/SHOPEASE/internal/core/domain"
	"github.com/Group-A-SPU-Advance-database-2024/SHOPEASE/internal/core/port"
)

var _ port.ProductsProvider = (*Service)(nil)
var _ port.ProductsEditor = (*Service)(nil)
var _ port.SalesProvider = (*Service)(nil)

// Service orchestrates the products operations between the HTTP
// adapter and the storage adapter. It owns input validation and holds
// no state between requests.
type Service struct {
	storage port.ProductsStorage
}

func New(storage port.ProductsStorage) Service {
	return Service{storage}
}

func (s Service) ListProducts(
	ctx context.Context, page domain.PageParams,
) ([]domain.Product, error) {
	const op = "Service.ListProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.storage.SelectProducts(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (s Service) ProductByID(
	ctx context.Context, productID int64,
) (domain.Product, error) {
	const op = "Service.ProductByID"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.storage.SelectProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s Service) CreateProduct(
	ctx context.Context, draft domain.ProductDraft,
) (domain.Product, error) {
	const op = "Service.CreateProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := draft.Validate(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.storage.InsertProduct(ctx, draft)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s Service) UpdateProduct(
	ctx context.Context, productID int64, draft domain.ProductDraft,
) (domain.Product, error) {
	const op = "Service.UpdateProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := draft.Validate(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.storage.UpdateProduct(ctx, productID, draft)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s Service) DeleteProduct(
	ctx context.Context, productID int64,
) error {
	const op = "Service.DeleteProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.DeleteProduct(ctx, productID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Service) TotalSalesByProduct(
	ctx context.Context, productID int64,
) (float64, error) {
	const op = "Service.TotalSalesByProduct"

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	total, err := s.storage.TotalSales(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}
