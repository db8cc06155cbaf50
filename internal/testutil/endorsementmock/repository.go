package endorsementmock

import (
	"context"

	domain "trustlend-backend/internal/domain/endorsement"
)

// Repo is a function-backed mock that satisfies endorsement.Repository.
type Repo struct {
	CreateFn                  func(ctx context.Context, e *domain.Edge) error
	GetPairFn                 func(ctx context.Context, endorserID, receiverID string) (*domain.Edge, error)
	GetActivePairForUpdateFn  func(ctx context.Context, endorserID, receiverID string) (*domain.Edge, error)
	SaveFn                    func(ctx context.Context, e *domain.Edge) error
	ListActiveByEndorserFn    func(ctx context.Context, endorserID string) ([]domain.Edge, error)
	ListActiveEndorserIDsFn   func(ctx context.Context, receiverID string) ([]string, error)
}

func (m *Repo) Create(ctx context.Context, e *domain.Edge) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) GetPair(ctx context.Context, endorserID, receiverID string) (*domain.Edge, error) {
	if m.GetPairFn != nil {
		return m.GetPairFn(ctx, endorserID, receiverID)
	}
	return nil, domain.ErrNoActiveEndorsement
}

func (m *Repo) GetActivePairForUpdate(ctx context.Context, endorserID, receiverID string) (*domain.Edge, error) {
	if m.GetActivePairForUpdateFn != nil {
		return m.GetActivePairForUpdateFn(ctx, endorserID, receiverID)
	}
	return nil, domain.ErrNoActiveEndorsement
}

func (m *Repo) Save(ctx context.Context, e *domain.Edge) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}

func (m *Repo) ListActiveByEndorser(ctx context.Context, endorserID string) ([]domain.Edge, error) {
	if m.ListActiveByEndorserFn != nil {
		return m.ListActiveByEndorserFn(ctx, endorserID)
	}
	return nil, nil
}

func (m *Repo) ListActiveEndorserIDs(ctx context.Context, receiverID string) ([]string, error) {
	if m.ListActiveEndorserIDsFn != nil {
		return m.ListActiveEndorserIDsFn(ctx, receiverID)
	}
	return nil, nil
}
