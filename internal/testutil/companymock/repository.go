package companymock

import (
	"context"

	domain "biztime/internal/domain/company"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Reads with no func set return context.Canceled; writes are no-ops.
type Repo struct {
	ListFn      func(ctx context.Context) ([]domain.Company, error)
	GetByCodeFn func(ctx context.Context, code string) (*domain.Company, error)
	CreateFn    func(ctx context.Context, c *domain.Company) error
	SaveFn      func(ctx context.Context, c *domain.Company) error
	DeleteFn    func(ctx context.Context, code string) error
}

func (m *Repo) List(ctx context.Context) ([]domain.Company, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByCode(ctx context.Context, code string) (*domain.Company, error) {
	if m.GetByCodeFn != nil {
		return m.GetByCodeFn(ctx, code)
	}
	return nil, context.Canceled
}

func (m *Repo) Create(ctx context.Context, c *domain.Company) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, c *domain.Company) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, code string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, code)
	}
	return nil
}
