package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Group-A-SPU-Advance-database-2024/SHOPEASE/internal/core/domain"
	"github.com/Group-A-SPU-Advance-database-2024/SHOPEASE/internal/core/port"
)

var _ port.ProductsStorage = (*ProductsRepository)(nil)

// ProductsRepository executes the products statements against the
// relational store. Parameters are always bound positionally.
type ProductsRepository struct {
	sqldb sqldb
}

func NewProductsRepository(sqldb sqldb) ProductsRepository {
	return ProductsRepository{sqldb}
}

func (r ProductsRepository) SelectProducts(
	ctx context.Context, page domain.PageParams,
) ([]domain.Product, error) {
	const op = "ProductsRepository.SelectProducts"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT product_id, product_name, cost, quantity, added_date
		FROM products
		ORDER BY product_id
		LIMIT $1 OFFSET $2;`

	rows, err := r.sqldb.QueryContext(ctx, query, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query: %w", op, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", "err", err)
		}
	}()

	ps := make([]domain.Product, 0)
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(
			&p.ProductID, &p.ProductName, &p.Cost, &p.Quantity, &p.AddedDate,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan row: %w", op, err)
		}
		ps = append(ps, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (r ProductsRepository) SelectProduct(
	ctx context.Context, productID int64,
) (domain.Product, error) {
	const op = "ProductsRepository.SelectProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT product_id, product_name, cost, quantity, added_date
		FROM products
		WHERE product_id = $1;`

	var p domain.Product
	err := r.sqldb.QueryRowContext(ctx, query, productID).Scan(
		&p.ProductID, &p.ProductName, &p.Cost, &p.Quantity, &p.AddedDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, fmt.Errorf(
				"%s: %w", op, domain.ErrProductNotFound,
			)
		}
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (r ProductsRepository) InsertProduct(
	ctx context.Context, draft domain.ProductDraft,
) (domain.Product, error) {
	const op = "ProductsRepository.InsertProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO products (product_name, cost, quantity, added_date)
		VALUES ($1, $2, $3, NOW())
		RETURNING product_id, product_name, cost, quantity, added_date;`

	var p domain.Product
	err := r.sqldb.QueryRowContext(
		ctx, query, draft.ProductName, draft.Cost, draft.Quantity,
	).Scan(
		&p.ProductID, &p.ProductName, &p.Cost, &p.Quantity, &p.AddedDate,
	)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: failed to insert: %w", op, err)
	}
	return p, nil
}

func (r ProductsRepository) UpdateProduct(
	ctx context.Context, productID int64, draft domain.ProductDraft,
) (domain.Product, error) {
	const op = "ProductsRepository.UpdateProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		UPDATE products
		SET product_name = $1, cost = $2, quantity = $3, added_date = NOW()
		WHERE product_id = $4
		RETURNING product_id, product_name, cost, quantity, added_date;`

	var p domain.Product
	err := r.sqldb.QueryRowContext(
		ctx, query, draft.ProductName, draft.Cost, draft.Quantity, productID,
	).Scan(
		&p.ProductID, &p.ProductName, &p.Cost, &p.Quantity, &p.AddedDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, fmt.Errorf(
				"%s: %w", op, domain.ErrProductNotFound,
			)
		}
		return domain.Product{}, fmt.Errorf("%s: failed to update: %w", op, err)
	}
	return p, nil
}

func (r ProductsRepository) DeleteProduct(
	ctx context.Context, productID int64,
) error {
	const op = "ProductsRepository.DeleteProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `DELETE FROM products WHERE product_id = $1;`

	res, err := r.sqldb.ExecContext(ctx, query, productID)
	if err != nil {
		return fmt.Errorf("%s: failed to delete: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrProductNotFound)
	}
	return nil
}

// TotalSales delegates the aggregate to the store-side
// calculate_total_sales_by_product function. An absent product id is
// reported as ErrProductNotFound; an existing product with no sales
// yields 0.
func (r ProductsRepository) TotalSales(
	ctx context.Context, productID int64,
) (float64, error) {
	const op = "ProductsRepository.TotalSales"

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	existsQuery := `SELECT EXISTS (SELECT 1 FROM products WHERE product_id = $1);`

	var exists bool
	err := r.sqldb.QueryRowContext(ctx, existsQuery, productID).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return 0, fmt.Errorf("%s: %w", op, domain.ErrProductNotFound)
	}

	totalQuery := `
		SELECT COALESCE(calculate_total_sales_by_product($1), 0) AS total_sales;`

	var total float64
	err = r.sqldb.QueryRowContext(ctx, totalQuery, productID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to calculate: %w", op, err)
	}
	return total, nil
}
