package uow

import (
	"context"
	"errors"

	"trustlend-backend/internal/domain/account"
	"trustlend-backend/internal/domain/contract"
	"trustlend-backend/internal/domain/endorsement"
	"trustlend-backend/internal/domain/loanrequest"
	"trustlend-backend/internal/domain/notification"
	"trustlend-backend/internal/domain/offer"
)

// ErrConflict marks a concurrent-writer conflict: the precondition a caller
// read was consumed by another transaction before the write landed. Callers
// may re-read and retry; every other business error is final.
var ErrConflict = errors.New("concurrent update conflict")

// Repos bundles every repository bound to one transaction.
type Repos struct {
	Accounts      account.Repository
	Endorsements  endorsement.Repository
	Offers        offer.Repository
	LoanRequests  loanrequest.Repository
	Contracts     contract.Repository
	Notifications notification.Repository
}

// UnitOfWork runs fn inside a single storage transaction; every write made
// through the passed Repos commits or rolls back together.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
