package gormstore

import (
	"context"

	"biztime/internal/domain/invoice"
	"biztime/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinInvoiceTx(ctx context.Context, id int64, fn func(r uow.Repos, inv *invoice.Invoice) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the invoice row up-front so concurrent payment updates serialize
		inv, err := r.Invoices.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		return fn(r, inv)
	})
}

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Companies: &CompanyRepository{db: tx},
		Invoices:  &InvoiceRepository{db: tx},
	}
}
