package invoice

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "biztime/internal/domain/invoice"
	"biztime/internal/domain/uow"

	"gorm.io/gorm"
)

type Usecase struct {
	invoices domain.Repository
	uow      uow.UnitOfWork
	now      func() time.Time
}

func NewUsecase(invoices domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{invoices: invoices, uow: tx, now: time.Now}
}

func (u *Usecase) List(ctx context.Context) ([]InvoiceDTO, error) {
	rows, err := u.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]InvoiceDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, id int64) (*DetailDTO, error) {
	d, err := u.invoices.GetDetail(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}
	dto := toDetailDTO(d)
	return &dto, nil
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*InvoiceDTO, error) {
	inv := &domain.Invoice{CompCode: in.CompCode, Amt: in.Amt}
	if err := u.invoices.Create(ctx, inv); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCompany, in.CompCode)
		}
		return nil, err
	}
	dto := toDTO(inv)
	return &dto, nil
}

// Update sets amt and moves the invoice through the payment transition
// while holding its row lock.
func (u *Usecase) Update(ctx context.Context, id int64, in UpdateInput) (*InvoiceDTO, error) {
	var dto InvoiceDTO
	err := u.uow.WithinInvoiceTx(ctx, id, func(r uow.Repos, inv *domain.Invoice) error {
		inv.Amt = in.Amt
		inv.ApplyPayment(in.Paid, u.now().UTC())
		if err := r.Invoices.Save(ctx, inv); err != nil {
			return err
		}
		dto = toDTO(inv)
		return nil
	})
	if err != nil {
		return nil, notFound(err, id)
	}
	return &dto, nil
}

func (u *Usecase) Delete(ctx context.Context, id int64) error {
	if err := u.invoices.Delete(ctx, id); err != nil {
		return notFound(err, id)
	}
	return nil
}

func notFound(err error, id int64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %d", domain.ErrNotFound, id)
	}
	return err
}
