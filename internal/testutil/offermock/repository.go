package offermock

import (
	"context"

	domain "trustlend-backend/internal/domain/offer"
)

// Repo is a function-backed mock that satisfies offer.Repository.
type Repo struct {
	CreateFn                func(ctx context.Context, o *domain.Offer) error
	GetByOfferIDFn          func(ctx context.Context, offerID string) (*domain.Offer, error)
	GetByOfferIDForUpdateFn func(ctx context.Context, offerID string) (*domain.Offer, error)
	SaveFn                  func(ctx context.Context, o *domain.Offer) error
	DeleteFn                func(ctx context.Context, o *domain.Offer) error
	ListActiveByIDsFn       func(ctx context.Context, offerIDs []string) ([]domain.Offer, error)
	ListActiveByLenderFn    func(ctx context.Context, lenderID string) ([]domain.Offer, error)
	FirstOwnedInFn          func(ctx context.Context, lenderID string, offerIDs []string) (*domain.Offer, error)
}

func (m *Repo) Create(ctx context.Context, o *domain.Offer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, o)
	}
	return nil
}

func (m *Repo) GetByOfferID(ctx context.Context, offerID string) (*domain.Offer, error) {
	if m.GetByOfferIDFn != nil {
		return m.GetByOfferIDFn(ctx, offerID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByOfferIDForUpdate(ctx context.Context, offerID string) (*domain.Offer, error) {
	if m.GetByOfferIDForUpdateFn != nil {
		return m.GetByOfferIDForUpdateFn(ctx, offerID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, o *domain.Offer) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, o)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, o *domain.Offer) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, o)
	}
	return nil
}

func (m *Repo) ListActiveByIDs(ctx context.Context, offerIDs []string) ([]domain.Offer, error) {
	if m.ListActiveByIDsFn != nil {
		return m.ListActiveByIDsFn(ctx, offerIDs)
	}
	return nil, nil
}

func (m *Repo) ListActiveByLender(ctx context.Context, lenderID string) ([]domain.Offer, error) {
	if m.ListActiveByLenderFn != nil {
		return m.ListActiveByLenderFn(ctx, lenderID)
	}
	return nil, nil
}

func (m *Repo) FirstOwnedIn(ctx context.Context, lenderID string, offerIDs []string) (*domain.Offer, error) {
	if m.FirstOwnedInFn != nil {
		return m.FirstOwnedInFn(ctx, lenderID, offerIDs)
	}
	return nil, domain.ErrNotFound
}
