package endorsement

import "context"

type Repository interface {
	Create(ctx context.Context, e *Edge) error
	// GetPair returns the edge for (endorser, receiver) in any status.
	GetPair(ctx context.Context, endorserID, receiverID string) (*Edge, error)
	// GetActivePairForUpdate locks the ACTIVE edge for the pair.
	GetActivePairForUpdate(ctx context.Context, endorserID, receiverID string) (*Edge, error)
	Save(ctx context.Context, e *Edge) error

	// ListActiveByEndorser returns all ACTIVE edges the endorser has created,
	// used for the rolling-window quota check.
	ListActiveByEndorser(ctx context.Context, endorserID string) ([]Edge, error)
	// ListActiveEndorserIDs returns the account IDs currently endorsing the
	// receiver, used for guarantor eligibility and settlement fan-out.
	ListActiveEndorserIDs(ctx context.Context, receiverID string) ([]string, error)
}
