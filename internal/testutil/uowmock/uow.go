package uowmock

import (
	"context"
	"errors"

	"biztime/internal/domain/invoice"
	"biztime/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn        func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinInvoiceTxFn func(ctx context.Context, id int64, fn func(r uow.Repos, inv *invoice.Invoice) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough runs every callback directly against repos, with no tx.
func Passthrough(repos uow.Repos) *UoW {
	return New().
		WithWithinTx(func(_ context.Context, fn func(uow.Repos) error) error {
			return fn(repos)
		}).
		WithWithinInvoiceTx(func(ctx context.Context, id int64, fn func(uow.Repos, *invoice.Invoice) error) error {
			inv, err := repos.Invoices.GetByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			return fn(repos, inv)
		})
}

func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinInvoiceTx(fn func(context.Context, int64, func(uow.Repos, *invoice.Invoice) error) error) *UoW {
	m.WithinInvoiceTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinInvoiceTx(ctx context.Context, id int64, fn func(r uow.Repos, inv *invoice.Invoice) error) error {
	if m.WithinInvoiceTxFn != nil {
		return m.WithinInvoiceTxFn(ctx, id, fn)
	}
	return errUnimplemented
}
