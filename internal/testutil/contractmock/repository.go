package contractmock

import (
	"context"
	"time"

	domain "trustlend-backend/internal/domain/contract"
)

// Repo is a function-backed mock that satisfies contract.Repository.
type Repo struct {
	CreateFn                          func(ctx context.Context, c *domain.Contract) error
	GetByContractIDFn                 func(ctx context.Context, contractID string) (*domain.Contract, error)
	GetByContractIDForUpdateFn        func(ctx context.Context, contractID string) (*domain.Contract, error)
	SaveFn                            func(ctx context.Context, c *domain.Contract) error
	UpdateStatusIfFn                  func(ctx context.Context, contractID string, from, to domain.Status) (bool, error)
	ListActivePastEndFn               func(ctx context.Context, now time.Time) ([]domain.Contract, error)
	ListAwaitingReceiptStaleFn        func(ctx context.Context, cutoff time.Time) ([]domain.Contract, error)
	CreateTransactionFn               func(ctx context.Context, t *domain.Transaction) error
	GetDisbursedByContractForUpdateFn func(ctx context.Context, contractID string) (*domain.Transaction, error)
	GetDisbursedByContractFn          func(ctx context.Context, contractID string) (*domain.Transaction, error)
	SaveTransactionFn                 func(ctx context.Context, t *domain.Transaction) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Contract) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByContractID(ctx context.Context, contractID string) (*domain.Contract, error) {
	if m.GetByContractIDFn != nil {
		return m.GetByContractIDFn(ctx, contractID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByContractIDForUpdate(ctx context.Context, contractID string) (*domain.Contract, error) {
	if m.GetByContractIDForUpdateFn != nil {
		return m.GetByContractIDForUpdateFn(ctx, contractID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, c *domain.Contract) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) UpdateStatusIf(ctx context.Context, contractID string, from, to domain.Status) (bool, error) {
	if m.UpdateStatusIfFn != nil {
		return m.UpdateStatusIfFn(ctx, contractID, from, to)
	}
	return true, nil
}

func (m *Repo) ListActivePastEnd(ctx context.Context, now time.Time) ([]domain.Contract, error) {
	if m.ListActivePastEndFn != nil {
		return m.ListActivePastEndFn(ctx, now)
	}
	return nil, nil
}

func (m *Repo) ListAwaitingReceiptStale(ctx context.Context, cutoff time.Time) ([]domain.Contract, error) {
	if m.ListAwaitingReceiptStaleFn != nil {
		return m.ListAwaitingReceiptStaleFn(ctx, cutoff)
	}
	return nil, nil
}

func (m *Repo) CreateTransaction(ctx context.Context, t *domain.Transaction) error {
	if m.CreateTransactionFn != nil {
		return m.CreateTransactionFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetDisbursedByContractForUpdate(ctx context.Context, contractID string) (*domain.Transaction, error) {
	if m.GetDisbursedByContractForUpdateFn != nil {
		return m.GetDisbursedByContractForUpdateFn(ctx, contractID)
	}
	return nil, domain.ErrNoDisbursement
}

func (m *Repo) GetDisbursedByContract(ctx context.Context, contractID string) (*domain.Transaction, error) {
	if m.GetDisbursedByContractFn != nil {
		return m.GetDisbursedByContractFn(ctx, contractID)
	}
	return nil, domain.ErrNoDisbursement
}

func (m *Repo) SaveTransaction(ctx context.Context, t *domain.Transaction) error {
	if m.SaveTransactionFn != nil {
		return m.SaveTransactionFn(ctx, t)
	}
	return nil
}
