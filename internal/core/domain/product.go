package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

// Product is a sellable item persisted in the products table.
// ProductID and AddedDate are assigned by the store; AddedDate is
// refreshed on every update.
type Product struct {
	ProductID   int64
	ProductName string
	Cost        float64
	Quantity    int
	AddedDate   time.Time
}

// ProductDraft carries the client-settable fields of a Product.
type ProductDraft struct {
	ProductName string
	Cost        float64
	Quantity    int
}

// Validate checks the draft before it reaches the storage layer.
func (d ProductDraft) Validate() error {
	var fields []string

	if strings.TrimSpace(d.ProductName) == "" {
		fields = append(fields, "product_name")
	}
	if d.Cost < 0 {
		fields = append(fields, "cost")
	}
	if d.Quantity < 0 {
		fields = append(fields, "quantity")
	}

	if len(fields) != 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf(
		"invalid product fields: %s", strings.Join(e.Fields, ", "),
	)
}

const (
	DefaultPageLimit = 10000
	MaxPageLimit     = 10000
)

// PageParams bounds the products listing.
type PageParams struct {
	Limit  int
	Offset int
}

// NewPageParams clamps out-of-range values to the permitted bounds
// instead of rejecting them.
func NewPageParams(limit, offset int) PageParams {
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	return PageParams{Limit: limit, Offset: offset}
}
