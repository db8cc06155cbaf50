// Package settlement applies the terminal score fan-out when a contract is
// repaid or defaults: one receiver delta computed once, then distributed to
// the guarantor and every active endorser, all in a single transaction.
package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"trustlend-backend/internal/domain/account"
	domain "trustlend-backend/internal/domain/contract"
	"trustlend-backend/internal/domain/loanrequest"
	"trustlend-backend/internal/domain/uow"
	"trustlend-backend/internal/trustindex"
	contractuc "trustlend-backend/internal/usecase/contract"
	"trustlend-backend/internal/usecase/ledger"
	"trustlend-backend/internal/usecase/notify"
)

type Usecase struct {
	uow uow.UnitOfWork
	log *logrus.Logger
}

func NewUsecase(tx uow.UnitOfWork, log *logrus.Logger) *Usecase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Usecase{uow: tx, log: log}
}

// adjustment is one planned score change. The whole fan-out is computed
// before anything is applied.
type adjustment struct {
	accountID string
	delta     int
	reason    string
}

// SettleRepayment finalizes a fully repaid contract. Idempotent: a contract
// already in a terminal state is left untouched.
func (u *Usecase) SettleRepayment(ctx context.Context, contractID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Contracts.GetByContractIDForUpdate(ctx, contractID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if c.Terminal() {
			u.log.WithField("contract_id", contractID).Info("contract already settled, skipping")
			return nil
		}

		receiver, err := r.Accounts.GetByAccountIDForUpdate(ctx, c.ReceiverID)
		if err != nil {
			return err
		}

		daysEarly := 0
		if c.EndDate != nil {
			if d := int(time.Until(*c.EndDate) / (24 * time.Hour)); d > 0 {
				daysEarly = d
			}
		}
		receiverDelta := trustindex.RepaymentGain(receiver.TrustScore, c.Principal, daysEarly, c.TenorDays)

		plan := u.fanOut(ctx, r, c, receiverDelta,
			fmt.Sprintf("Loan Repayment: %s", c.ContractID),
			fmt.Sprintf("Guaranteed Loan Repaid: %s", c.ContractID),
			fmt.Sprintf("Endorsed Loan Repaid: %s", c.ContractID))

		// CAS on the status so two concurrent settlements resolve to one.
		moved, err := r.Contracts.UpdateStatusIf(ctx, c.ContractID, c.Status, domain.StatusRepaid)
		if err != nil {
			return err
		}
		if !moved {
			return fmt.Errorf("contract %s already transitioned: %w", c.ContractID, uow.ErrConflict)
		}

		receiver.SuccessfulRepayments++
		if err := u.apply(ctx, r, receiver, plan); err != nil {
			return err
		}

		lr, err := r.LoanRequests.GetByRequestIDForUpdate(ctx, c.RequestID)
		if err == nil {
			lr.Status = loanrequest.StatusFulfilled
			if err := r.LoanRequests.Save(ctx, lr); err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		c.Status = domain.StatusRepaid
		notify.PushAll(ctx, r.Notifications, contractuc.TransitionEvents(c, domain.StatusRepaid))
		u.log.WithFields(logrus.Fields{
			"contract_id": c.ContractID,
			"delta":       receiverDelta,
		}).Info("repayment settled")
		return nil
	})
}

// SettleDefault finalizes an overdue contract. Idempotent on terminal status
// and conflict-safe against a concurrent repayment or a second sweep.
func (u *Usecase) SettleDefault(ctx context.Context, contractID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Contracts.GetByContractIDForUpdate(ctx, contractID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if c.Terminal() {
			u.log.WithField("contract_id", contractID).Info("contract already settled, skipping")
			return nil
		}
		if c.Status != domain.StatusActive {
			return domain.ErrWrongState
		}

		receiver, err := r.Accounts.GetByAccountIDForUpdate(ctx, c.ReceiverID)
		if err != nil {
			return err
		}

		daysLate := 0
		if c.EndDate != nil {
			if d := int(time.Since(*c.EndDate) / (24 * time.Hour)); d > 0 {
				daysLate = d
			}
		}
		loss := trustindex.DefaultLoss(receiver.TrustScore, c.Principal, daysLate)

		plan := u.fanOut(ctx, r, c, -loss,
			fmt.Sprintf("Loan Default: %s", c.ContractID),
			fmt.Sprintf("Guaranteed Loan Defaulted: %s", c.ContractID),
			fmt.Sprintf("Endorsed Loan Defaulted: %s", c.ContractID))

		moved, err := r.Contracts.UpdateStatusIf(ctx, c.ContractID, domain.StatusActive, domain.StatusDefault)
		if err != nil {
			return err
		}
		if !moved {
			return fmt.Errorf("contract %s already transitioned: %w", c.ContractID, uow.ErrConflict)
		}

		receiver.Defaults++
		if err := u.apply(ctx, r, receiver, plan); err != nil {
			return err
		}

		c.Status = domain.StatusDefault
		notify.PushAll(ctx, r.Notifications, contractuc.TransitionEvents(c, domain.StatusDefault))
		u.log.WithFields(logrus.Fields{
			"contract_id": c.ContractID,
			"delta":       -loss,
		}).Info("default settled")
		return nil
	})
}

// fanOut plans the full distribution for one receiver delta: the receiver
// itself, the guarantor's half share and the endorsers' equal split. The
// magnitudes are computed on the absolute receiver delta and re-signed, so
// floor rounding behaves identically on both paths.
func (u *Usecase) fanOut(ctx context.Context, r uow.Repos, c *domain.Contract, receiverDelta int, receiverReason, guarantorReason, endorserReason string) []adjustment {
	sign := 1
	magnitude := receiverDelta
	if receiverDelta < 0 {
		sign = -1
		magnitude = -receiverDelta
	}

	plan := []adjustment{{c.ReceiverID, receiverDelta, receiverReason}}
	if c.GuarantorID != "" {
		plan = append(plan, adjustment{c.GuarantorID, sign * trustindex.GuarantorImpact(magnitude), guarantorReason})
	}

	endorserIDs, err := r.Endorsements.ListActiveEndorserIDs(ctx, c.ReceiverID)
	if err != nil {
		u.log.WithError(err).Warn("could not list endorsers for settlement")
		return plan
	}
	if len(endorserIDs) > 0 {
		share := sign * trustindex.EndorserImpact(magnitude, len(endorserIDs))
		for _, eid := range endorserIDs {
			plan = append(plan, adjustment{eid, share, endorserReason})
		}
	}
	return plan
}

// apply pushes every planned adjustment through the ledger. The receiver's
// already-locked row is reused; the other accounts are locked as they go.
func (u *Usecase) apply(ctx context.Context, r uow.Repos, receiver *account.Account, plan []adjustment) error {
	for _, adj := range plan {
		acc := receiver
		if adj.accountID != receiver.AccountID {
			var err error
			acc, err = r.Accounts.GetByAccountIDForUpdate(ctx, adj.accountID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					u.log.WithField("account_id", adj.accountID).Warn("settlement target not found, skipping")
					continue
				}
				return err
			}
		}
		if err := ledger.Apply(ctx, r.Accounts, acc, adj.delta, adj.reason); err != nil {
			return err
		}
	}
	return nil
}
