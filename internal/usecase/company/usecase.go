package company

import (
	"context"
	"errors"
	"fmt"

	domain "biztime/internal/domain/company"
	"biztime/internal/domain/invoice"
	"biztime/internal/domain/uow"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Usecase struct {
	companies domain.Repository
	invoices  invoice.Repository
	uow       uow.UnitOfWork
}

func NewUsecase(companies domain.Repository, invoices invoice.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{companies: companies, invoices: invoices, uow: tx}
}

func (u *Usecase) List(ctx context.Context) ([]CompanyDTO, error) {
	rows, err := u.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CompanyDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, code string) (*DetailDTO, error) {
	c, err := u.companies.GetByCode(ctx, code)
	if err != nil {
		return nil, notFound(err, code)
	}
	ids, err := u.invoices.ListIDsByCompany(ctx, code)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []int64{}
	}
	return &DetailDTO{CompanyDTO: toDTO(c), Invoices: ids}, nil
}

// Create stores the company under the slug of in.Code.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*CompanyDTO, error) {
	code := slug.Make(in.Code)
	if code == "" {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCode, in.Code)
	}
	if len(code) > domain.MaxCodeLen {
		return nil, fmt.Errorf("%w: %s", domain.ErrCodeTooLong, code)
	}

	c := &domain.Company{Code: code, Name: in.Name, Description: in.Description}
	if err := u.companies.Create(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyExists, code)
		}
		return nil, err
	}
	dto := toDTO(c)
	return &dto, nil
}

func (u *Usecase) Update(ctx context.Context, code string, in UpdateInput) (*CompanyDTO, error) {
	var dto CompanyDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Companies.GetByCode(ctx, code)
		if err != nil {
			return notFound(err, code)
		}
		c.Name = in.Name
		c.Description = in.Description
		if err := r.Companies.Save(ctx, c); err != nil {
			return err
		}
		dto = toDTO(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// Delete refuses while any invoice still references the company.
func (u *Usecase) Delete(ctx context.Context, code string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Companies.GetByCode(ctx, code); err != nil {
			return notFound(err, code)
		}
		n, err := r.Invoices.CountByCompany(ctx, code)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: %s", domain.ErrHasInvoices, code)
		}

		err = r.Companies.Delete(ctx, code)
		switch {
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			// an invoice slipped in after the count
			return fmt.Errorf("%w: %s", domain.ErrHasInvoices, code)
		case err != nil:
			return notFound(err, code)
		}
		return nil
	})
}

func notFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, code)
	}
	return err
}
