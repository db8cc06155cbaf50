// Package scheduler runs the two time-driven sweeps: blocking receivers who
// sat on a disbursal for more than 24 hours, and defaulting active contracts
// past their end date.
package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"trustlend-backend/internal/domain/account"
	contractdomain "trustlend-backend/internal/domain/contract"
	"trustlend-backend/internal/domain/uow"
	"trustlend-backend/internal/usecase/settlement"
)

type Scheduler struct {
	uow    uow.UnitOfWork
	settle *settlement.Usecase
	log    *logrus.Logger

	ReceiptSweepEvery time.Duration // default 1h
	DefaultSweepEvery time.Duration // default 24h
	ReceiptTimeout    time.Duration // default 24h
}

func New(tx uow.UnitOfWork, settle *settlement.Usecase, log *logrus.Logger) *Scheduler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Scheduler{
		uow:    tx,
		settle: settle,
		log:    log,

		ReceiptSweepEvery: time.Hour,
		DefaultSweepEvery: 24 * time.Hour,
		ReceiptTimeout:    24 * time.Hour,
	}
}

// Run starts both sweep loops and blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	receiptTicker := time.NewTicker(s.ReceiptSweepEvery)
	defaultTicker := time.NewTicker(s.DefaultSweepEvery)
	defer receiptTicker.Stop()
	defer defaultTicker.Stop()

	s.log.Info("scheduler started")
	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return
		case <-receiptTicker.C:
			s.SweepOverdueReceipts(ctx)
		case <-defaultTicker.C:
			s.SweepDefaults(ctx)
		}
	}
}

// SweepOverdueReceipts blocks the receiver of every contract that has been
// awaiting receipt confirmation past the timeout. The contract itself is not
// touched; this is an account-level penalty.
func (s *Scheduler) SweepOverdueReceipts(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-s.ReceiptTimeout)

	var overdue []contractdomain.Contract
	err := s.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		overdue, err = r.Contracts.ListAwaitingReceiptStale(ctx, cutoff)
		return err
	})
	if err != nil {
		s.log.WithError(err).Error("overdue receipt sweep: listing failed")
		return
	}

	for _, c := range overdue {
		// One transaction per contract: a failure must not abort the sweep.
		err := s.uow.WithinTx(ctx, func(r uow.Repos) error {
			receiver, err := r.Accounts.GetByAccountIDForUpdate(ctx, c.ReceiverID)
			if err != nil {
				return err
			}
			if receiver.Status == account.StatusBlocked {
				return nil
			}
			receiver.Status = account.StatusBlocked
			return r.Accounts.Save(ctx, receiver)
		})
		if err != nil {
			s.log.WithError(err).WithField("contract_id", c.ContractID).
				Error("overdue receipt sweep: blocking receiver failed")
			continue
		}
		s.log.WithFields(logrus.Fields{
			"contract_id": c.ContractID,
			"receiver_id": c.ReceiverID,
		}).Warn("receiver blocked for unconfirmed receipt")
	}
}

// SweepDefaults settles every ACTIVE contract whose end date has passed.
// Conflicts with a concurrent repayment or a second sweep are expected and
// logged, not escalated.
func (s *Scheduler) SweepDefaults(ctx context.Context) {
	now := time.Now().UTC()

	var overdue []contractdomain.Contract
	err := s.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		overdue, err = r.Contracts.ListActivePastEnd(ctx, now)
		return err
	})
	if err != nil {
		s.log.WithError(err).Error("default sweep: listing failed")
		return
	}

	for _, c := range overdue {
		if err := s.settle.SettleDefault(ctx, c.ContractID); err != nil {
			if errors.Is(err, uow.ErrConflict) || errors.Is(err, contractdomain.ErrWrongState) {
				s.log.WithField("contract_id", c.ContractID).
					Info("default sweep: contract settled elsewhere")
				continue
			}
			s.log.WithError(err).WithField("contract_id", c.ContractID).
				Error("default sweep: settlement failed")
		}
	}
}
