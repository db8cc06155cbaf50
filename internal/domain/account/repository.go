package account

import "context"

type Repository interface {
	Create(ctx context.Context, a *Account) error
	GetByAccountID(ctx context.Context, accountID string) (*Account, error)
	// GetByAccountIDForUpdate locks the row for the duration of the
	// surrounding transaction. Score mutations must go through this.
	GetByAccountIDForUpdate(ctx context.Context, accountID string) (*Account, error)
	Save(ctx context.Context, a *Account) error

	AppendScoreEvent(ctx context.Context, ev *ScoreEvent) error
	ListScoreEvents(ctx context.Context, accountID string) ([]ScoreEvent, error)
}
