package port

import (
	"context"

	"github.com/Group-A-SPU-Advance-database-2024/SHOPEASE/internal/core/domain"
)

type ProductsProvider interface {
	ListProducts(context.Context, domain.PageParams) ([]domain.Product, error)
	ProductByID(context.Context, int64) (domain.Product, error)
}

type ProductsEditor interface {
	CreateProduct(context.Context, domain.ProductDraft) (domain.Product, error)
	UpdateProduct(context.Context, int64, domain.ProductDraft) (domain.Product, error)
	DeleteProduct(context.Context, int64) error
}

type SalesProvider interface {
	TotalSalesByProduct(context.Context, int64) (float64, error)
}

type ProductsStorage interface {
	SelectProducts(context.Context, domain.PageParams) ([]domain.Product, error)
	SelectProduct(context.Context, int64) (domain.Product, error)
	InsertProduct(context.Context, domain.ProductDraft) (domain.Product, error)
	UpdateProduct(context.Context, int64, domain.ProductDraft) (domain.Product, error)
	DeleteProduct(context.Context, int64) error
	TotalSales(context.Context, int64) (float64, error)
}
