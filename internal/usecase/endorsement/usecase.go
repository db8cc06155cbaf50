package endorsement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"trustlend-backend/internal/domain/account"
	domain "trustlend-backend/internal/domain/endorsement"
	"trustlend-backend/internal/domain/uow"
	"trustlend-backend/internal/trustindex"
	"trustlend-backend/internal/usecase/ledger"
	"trustlend-backend/internal/usecase/notify"
	"trustlend-backend/pkg/quota"
)

// monthlyQuota caps how many endorsements one account may create within a
// rolling 30-day window.
var monthlyQuota = quota.Window{Limit: 4, Span: 30 * 24 * time.Hour}

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Endorse creates an ACTIVE trust edge from endorser to receiver and grants
// the receiver the tier gain. Edge creation, both score writes and the
// notification row commit in one transaction.
func (u *Usecase) Endorse(ctx context.Context, endorserID, receiverID string) error {
	if endorserID == receiverID {
		return domain.ErrSelfEndorsement
	}

	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		// Lock the endorser's row first: same-endorser creates serialize on
		// it, so the quota count below sees every committed edge.
		if _, err := r.Accounts.GetByAccountIDForUpdate(ctx, endorserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return account.ErrNotFound
			}
			return err
		}

		existing, err := r.Endorsements.GetPair(ctx, endorserID, receiverID)
		switch {
		case err == nil:
			if existing.Status == domain.StatusActive {
				return domain.ErrAlreadyEndorsed
			}
			// A removed edge permanently blocks the pair.
			return domain.ErrPermanentlyBlocked
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		edges, err := r.Endorsements.ListActiveByEndorser(ctx, endorserID)
		if err != nil {
			return err
		}
		created := make([]time.Time, 0, len(edges))
		for _, e := range edges {
			created = append(created, e.CreatedAt)
		}
		if !monthlyQuota.Allows(time.Now().UTC(), created) {
			return domain.ErrQuotaExceeded
		}

		receiver, err := r.Accounts.GetByAccountIDForUpdate(ctx, receiverID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return account.ErrNotFound
			}
			return err
		}

		gain := trustindex.EndorsementGain(receiver.TrustScore)
		if err := ledger.Apply(ctx, r.Accounts, receiver, gain, "Received Endorsement"); err != nil {
			return err
		}

		err = r.Endorsements.Create(ctx, &domain.Edge{
			EndorserID: endorserID,
			ReceiverID: receiverID,
			Status:     domain.StatusActive,
		})
		if err != nil {
			// Unique (endorser, receiver) index: a concurrent create won.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("endorsement already created: %w", uow.ErrConflict)
			}
			return err
		}

		notify.Push(ctx, r.Notifications, receiverID,
			"You received a new endorsement. Your TrustIndex has increased.", "/endorsements")
		return nil
	})
}

// Unendorse removes an ACTIVE edge, applying the tier loss to the receiver.
// The edge is kept as a REMOVED row so the pair can never endorse again.
func (u *Usecase) Unendorse(ctx context.Context, endorserID, receiverID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		edge, err := r.Endorsements.GetActivePairForUpdate(ctx, endorserID, receiverID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNoActiveEndorsement
			}
			return err
		}

		receiver, err := r.Accounts.GetByAccountIDForUpdate(ctx, receiverID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return account.ErrNotFound
			}
			return err
		}

		loss := trustindex.EndorsementRemovalLoss(receiver.TrustScore)
		if err := ledger.Apply(ctx, r.Accounts, receiver, -loss, "Endorsement Removed"); err != nil {
			return err
		}

		edge.Status = domain.StatusRemoved
		if err := r.Endorsements.Save(ctx, edge); err != nil {
			return err
		}

		notify.Push(ctx, r.Notifications, receiverID,
			"An endorsement was removed. Your TrustIndex has decreased.", "/endorsements")
		return nil
	})
}

// Endorsers lists the account IDs currently endorsing the receiver.
func (u *Usecase) Endorsers(ctx context.Context, receiverID string) ([]string, error) {
	var out []string
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		ids, err := r.Endorsements.ListActiveEndorserIDs(ctx, receiverID)
		if err != nil {
			return err
		}
		out = ids
		return nil
	})
	return out, err
}
