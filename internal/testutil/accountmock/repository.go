package accountmock

import (
	"context"

	domain "trustlend-backend/internal/domain/account"
)

// Repo is a function-backed mock that satisfies account.Repository.
// Unset getters fall back to in-place mutation no-ops so ledger-style
// read-modify-write flows work without wiring every field.
type Repo struct {
	CreateFn                  func(ctx context.Context, a *domain.Account) error
	GetByAccountIDFn          func(ctx context.Context, accountID string) (*domain.Account, error)
	GetByAccountIDForUpdateFn func(ctx context.Context, accountID string) (*domain.Account, error)
	SaveFn                    func(ctx context.Context, a *domain.Account) error
	AppendScoreEventFn        func(ctx context.Context, ev *domain.ScoreEvent) error
	ListScoreEventsFn         func(ctx context.Context, accountID string) ([]domain.ScoreEvent, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByAccountID(ctx context.Context, accountID string) (*domain.Account, error) {
	if m.GetByAccountIDFn != nil {
		return m.GetByAccountIDFn(ctx, accountID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByAccountIDForUpdate(ctx context.Context, accountID string) (*domain.Account, error) {
	if m.GetByAccountIDForUpdateFn != nil {
		return m.GetByAccountIDForUpdateFn(ctx, accountID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, a *domain.Account) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) AppendScoreEvent(ctx context.Context, ev *domain.ScoreEvent) error {
	if m.AppendScoreEventFn != nil {
		return m.AppendScoreEventFn(ctx, ev)
	}
	return nil
}

func (m *Repo) ListScoreEvents(ctx context.Context, accountID string) ([]domain.ScoreEvent, error) {
	if m.ListScoreEventsFn != nil {
		return m.ListScoreEventsFn(ctx, accountID)
	}
	return nil, nil
}
