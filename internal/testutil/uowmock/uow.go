package uowmock

import (
	"context"

	"trustlend-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

// UoW is a pass-through UnitOfWork for usecase tests: it hands the configured
// Repos straight to the callback with no real transaction underneath.
// Set WithinTxFn to override the pass-through (e.g. to count invocations or
// inject commit errors).
type UoW struct {
	Repos      uow.Repos
	WithinTxFn func(ctx context.Context, fn func(r uow.Repos) error) error

	// Calls counts WithinTx invocations in pass-through mode.
	Calls int
}

func New(r uow.Repos) *UoW { return &UoW{Repos: r} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	m.Calls++
	return fn(m.Repos)
}
