package offer

import "context"

type Repository interface {
	Create(ctx context.Context, o *Offer) error
	GetByOfferID(ctx context.Context, offerID string) (*Offer, error)
	GetByOfferIDForUpdate(ctx context.Context, offerID string) (*Offer, error)
	Save(ctx context.Context, o *Offer) error
	Delete(ctx context.Context, o *Offer) error

	// ListActiveByIDs returns the subset of the given offers that exist and
	// are active.
	ListActiveByIDs(ctx context.Context, offerIDs []string) ([]Offer, error)
	ListActiveByLender(ctx context.Context, lenderID string) ([]Offer, error)
	// FirstOwnedIn returns the lender's offer among the given IDs, or
	// ErrNotFound if none of them belong to the lender.
	FirstOwnedIn(ctx context.Context, lenderID string, offerIDs []string) (*Offer, error)
}
