package gormstore

import (
	"context"

	invoiceDomain "biztime/internal/domain/invoice"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvoiceRepository struct{ db *gorm.DB }

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository { return &InvoiceRepository{db: db} }

func (r *InvoiceRepository) List(ctx context.Context) ([]invoiceDomain.Invoice, error) {
	var out []invoiceDomain.Invoice
	res := r.db.WithContext(ctx).Order("id").Find(&out)
	return out, res.Error
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id int64) (*invoiceDomain.Invoice, error) {
	var out invoiceDomain.Invoice
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *InvoiceRepository) GetByIDForUpdate(ctx context.Context, id int64) (*invoiceDomain.Invoice, error) {
	var out invoiceDomain.Invoice
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *InvoiceRepository) GetDetail(ctx context.Context, id int64) (*invoiceDomain.Detail, error) {
	var out invoiceDomain.Detail
	res := r.db.WithContext(ctx).
		Table("invoices AS i").
		Select("i.id, i.amt, i.paid, i.add_date, i.paid_date, i.comp_code, c.name AS comp_name, c.description AS comp_description").
		Joins("JOIN companies AS c ON c.code = i.comp_code").
		Where("i.id = ?", id).
		Take(&out)
	return &out, res.Error
}

func (r *InvoiceRepository) ListIDsByCompany(ctx context.Context, compCode string) ([]int64, error) {
	ids := []int64{}
	res := r.db.WithContext(ctx).
		Model(&invoiceDomain.Invoice{}).
		Where("comp_code = ?", compCode).
		Order("id").
		Pluck("id", &ids)
	return ids, res.Error
}

func (r *InvoiceRepository) CountByCompany(ctx context.Context, compCode string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&invoiceDomain.Invoice{}).
		Where("comp_code = ?", compCode).
		Count(&n)
	return n, res.Error
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *invoiceDomain.Invoice) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(inv).Error
}

func (r *InvoiceRepository) Save(ctx context.Context, inv *invoiceDomain.Invoice) error {
	return r.db.WithContext(ctx).
		Model(&invoiceDomain.Invoice{}).
		Where("id = ?", inv.ID).
		Updates(map[string]any{"amt": inv.Amt, "paid": inv.Paid, "paid_date": inv.PaidDate}).Error
}

func (r *InvoiceRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&invoiceDomain.Invoice{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
