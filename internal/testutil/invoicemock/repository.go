package invoicemock

import (
	"context"

	domain "biztime/internal/domain/invoice"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Reads with no func set return context.Canceled; writes are no-ops.
type Repo struct {
	ListFn             func(ctx context.Context) ([]domain.Invoice, error)
	GetByIDFn          func(ctx context.Context, id int64) (*domain.Invoice, error)
	GetByIDForUpdateFn func(ctx context.Context, id int64) (*domain.Invoice, error)
	GetDetailFn        func(ctx context.Context, id int64) (*domain.Detail, error)
	ListIDsByCompanyFn func(ctx context.Context, compCode string) ([]int64, error)
	CountByCompanyFn   func(ctx context.Context, compCode string) (int64, error)
	CreateFn           func(ctx context.Context, inv *domain.Invoice) error
	SaveFn             func(ctx context.Context, inv *domain.Invoice) error
	DeleteFn           func(ctx context.Context, id int64) error
}

func (m *Repo) List(ctx context.Context) ([]domain.Invoice, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Invoice, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetDetail(ctx context.Context, id int64) (*domain.Detail, error) {
	if m.GetDetailFn != nil {
		return m.GetDetailFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListIDsByCompany(ctx context.Context, compCode string) ([]int64, error) {
	if m.ListIDsByCompanyFn != nil {
		return m.ListIDsByCompanyFn(ctx, compCode)
	}
	return nil, context.Canceled
}

func (m *Repo) CountByCompany(ctx context.Context, compCode string) (int64, error) {
	if m.CountByCompanyFn != nil {
		return m.CountByCompanyFn(ctx, compCode)
	}
	return 0, context.Canceled
}

func (m *Repo) Create(ctx context.Context, inv *domain.Invoice) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, inv)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, inv *domain.Invoice) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, inv)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
