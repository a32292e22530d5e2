package repositories

import (
	"context"
	"errors"

	"produtos/internal/models"
)

var (
	// ErrProductNotFound is returned when an id does not resolve to a product.
	ErrProductNotFound = errors.New("product not found")
	// ErrConstraintViolation is returned when the store rejects a write
	// because it would break a table constraint.
	ErrConstraintViolation = errors.New("constraint violation")
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	// Update applies a partial update to the product with the given id and
	// returns the stored result.
	Update(ctx context.Context, id uint, update models.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id uint) error
}
