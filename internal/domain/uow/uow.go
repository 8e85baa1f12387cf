package uow

import (
	"context"

	"biztime/internal/domain/company"
	"biztime/internal/domain/invoice"
)

// Repos are bound to the transaction that created them.
type Repos struct {
	Companies company.Repository
	Invoices  invoice.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock the invoice row first, then pass it in
	WithinInvoiceTx(ctx context.Context, id int64, fn func(r Repos, inv *invoice.Invoice) error) error
}
