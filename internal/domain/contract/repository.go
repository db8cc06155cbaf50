package contract

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, c *Contract) error
	GetByContractID(ctx context.Context, contractID string) (*Contract, error)
	GetByContractIDForUpdate(ctx context.Context, contractID string) (*Contract, error)
	Save(ctx context.Context, c *Contract) error

	// UpdateStatusIf performs a compare-and-swap on the status column and
	// reports whether the row was moved. A false return means a concurrent
	// writer already consumed the transition.
	UpdateStatusIf(ctx context.Context, contractID string, from, to Status) (bool, error)

	// ListActivePastEnd returns ACTIVE contracts whose end date is before now
	// (candidates for default settlement).
	ListActivePastEnd(ctx context.Context, now time.Time) ([]Contract, error)
	// ListAwaitingReceiptStale returns AWAITING_RECEIPT_CONFIRMATION
	// contracts untouched since the cutoff.
	ListAwaitingReceiptStale(ctx context.Context, cutoff time.Time) ([]Contract, error)

	CreateTransaction(ctx context.Context, t *Transaction) error
	// GetDisbursedByContractForUpdate locks the outstanding DISBURSED
	// transaction for the contract.
	GetDisbursedByContractForUpdate(ctx context.Context, contractID string) (*Transaction, error)
	GetDisbursedByContract(ctx context.Context, contractID string) (*Transaction, error)
	SaveTransaction(ctx context.Context, t *Transaction) error
}
