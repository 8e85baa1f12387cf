package company

import "context"

type Repository interface {
	// Ordered by code
	List(ctx context.Context) ([]Company, error)
	GetByCode(ctx context.Context, code string) (*Company, error)
	Create(ctx context.Context, c *Company) error
	// Save writes name and description; code is immutable
	Save(ctx context.Context, c *Company) error
	// Delete returns gorm.ErrRecordNotFound when no row matched
	Delete(ctx context.Context, code string) error
}
