package invoice

import "context"

type Repository interface {
	// Ordered by id
	List(ctx context.Context) ([]Invoice, error)
	GetByID(ctx context.Context, id int64) (*Invoice, error)
	// Same as GetByID but locks the row until the surrounding tx ends
	GetByIDForUpdate(ctx context.Context, id int64) (*Invoice, error)
	GetDetail(ctx context.Context, id int64) (*Detail, error)
	ListIDsByCompany(ctx context.Context, compCode string) ([]int64, error)
	CountByCompany(ctx context.Context, compCode string) (int64, error)
	Create(ctx context.Context, inv *Invoice) error
	// Save writes amt, paid and paid_date only
	Save(ctx context.Context, inv *Invoice) error
	// Delete returns gorm.ErrRecordNotFound when no row matched
	Delete(ctx context.Context, id int64) error
}
