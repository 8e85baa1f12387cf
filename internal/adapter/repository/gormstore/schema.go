package gormstore

import (
	"biztime/internal/domain/company"
	"biztime/internal/domain/invoice"

	"gorm.io/gorm"
)

// Models lists the tables owned by this service, parents first.
func Models() []any {
	return []any{&company.Company{}, &invoice.Invoice{}}
}

// EnsureSchema creates missing tables, columns and the invoices -> companies
// foreign key. It never drops or rewrites existing columns.
func EnsureSchema(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
