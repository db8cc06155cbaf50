package contract

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "trustlend-backend/internal/domain/contract"
	"trustlend-backend/internal/domain/loanrequest"
	"trustlend-backend/internal/domain/offer"
	"trustlend-backend/internal/domain/uow"
	"trustlend-backend/internal/usecase/notify"
	"trustlend-backend/pkg/id"
)

// DocumentService produces and finalizes the contract document artifact.
// Only the reference token matters to the core.
type DocumentService interface {
	CreateDraft(ctx context.Context, c *domain.Contract) (string, error)
	Finalize(ctx context.Context, ref string) (string, error)
}

// PaymentGateway is the opaque outbound payment collaborator: initiate a
// payment for an amount against a contract, get back a redirect reference.
type PaymentGateway interface {
	Initiate(ctx context.Context, contractID, payerID string, amount float64) (string, error)
}

type Usecase struct {
	uow     uow.UnitOfWork
	docs    DocumentService
	gateway PaymentGateway
}

func NewUsecase(tx uow.UnitOfWork, docs DocumentService, gateway PaymentGateway) *Usecase {
	return &Usecase{uow: tx, docs: docs, gateway: gateway}
}

// CreateForRequest instantiates the contract for a matched request+offer
// inside the caller's transaction. A draft document is generated up front;
// if that fails the whole acceptance rolls back.
func (u *Usecase) CreateForRequest(ctx context.Context, r uow.Repos, lr *loanrequest.LoanRequest, off *offer.Offer) (*domain.Contract, error) {
	if lr.GuarantorID == nil {
		return nil, loanrequest.ErrInvalidState
	}

	c := &domain.Contract{
		ContractID:  id.NewID32(),
		RequestID:   lr.RequestID,
		LenderID:    off.LenderID,
		ReceiverID:  lr.ReceiverID,
		GuarantorID: *lr.GuarantorID,

		Principal:    off.Amount,
		InterestRate: off.InterestRate,
		TenorDays:    off.TenorDays,
		Status:       domain.StatusPendingSignatures,
	}

	ref, err := u.docs.CreateDraft(ctx, c)
	if err != nil {
		return nil, err
	}
	c.DocumentRef = ref

	if err := r.Contracts.Create(ctx, c); err != nil {
		return nil, err
	}

	notify.PushAll(ctx, r.Notifications, creationEvents(c))
	return c, nil
}

// Sign records one party's signature. When the third signature lands the
// contract advances to AWAITING_DISBURSAL and the document is finalized.
func (u *Usecase) Sign(ctx context.Context, actorID, contractID string) (*domain.Contract, error) {
	var out *domain.Contract
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Contracts.GetByContractIDForUpdate(ctx, contractID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if c.Status != domain.StatusPendingSignatures {
			return domain.ErrNotSignable
		}
		party, ok := c.PartyOf(actorID)
		if !ok {
			return domain.ErrNotAParty
		}
		if c.Signed(party) {
			return domain.ErrAlreadySigned
		}

		c.SetSigned(party)
		if c.FullySigned() {
			finalRef, err := u.docs.Finalize(ctx, c.DocumentRef)
			if err != nil {
				return err
			}
			c.DocumentRef = finalRef
			c.Status = domain.StatusAwaitingDisbursal
		}
		if err := r.Contracts.Save(ctx, c); err != nil {
			return err
		}
		if c.Status == domain.StatusAwaitingDisbursal {
			notify.PushAll(ctx, r.Notifications, transitionEvents(c, domain.StatusAwaitingDisbursal))
		}
		out = c
		return nil
	})
	return out, err
}

// ConfirmDisbursal records the lender's fund transfer: a DISBURSED
// transaction with proof and external reference, then the contract moves to
// AWAITING_RECEIPT_CONFIRMATION.
func (u *Usecase) ConfirmDisbursal(ctx context.Context, lenderID, contractID, proofRef, externalRef string) (*domain.Contract, error) {
	if proofRef == "" || externalRef == "" {
		return nil, domain.ErrProofRequired
	}
	var out *domain.Contract
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Contracts.GetByContractIDForUpdate(ctx, contractID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if c.LenderID != lenderID {
			return domain.ErrNotLender
		}
		if c.Status != domain.StatusAwaitingDisbursal {
			return domain.ErrWrongState
		}

		err = r.Contracts.CreateTransaction(ctx, &domain.Transaction{
			TransactionID: id.NewID32(),
			ContractID:    c.ContractID,
			FromID:        c.LenderID,
			ToID:          c.ReceiverID,
			Amount:        float64(c.Principal),
			Status:        domain.TxnDisbursed,
			ProofRef:      proofRef,
			ExternalRef:   externalRef,
		})
		if err != nil {
			return err
		}

		c.Status = domain.StatusAwaitingReceipt
		if err := r.Contracts.Save(ctx, c); err != nil {
			return err
		}
		notify.PushAll(ctx, r.Notifications, transitionEvents(c, domain.StatusAwaitingReceipt))
		out = c
		return nil
	})
	return out, err
}

// ConfirmReceipt is the receiver acknowledging the funds arrived. The
// disbursal transaction flips to CONFIRMED and the loan clock starts.
func (u *Usecase) ConfirmReceipt(ctx context.Context, receiverID, contractID string) (*domain.Contract, error) {
	var out *domain.Contract
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Contracts.GetByContractIDForUpdate(ctx, contractID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if c.ReceiverID != receiverID {
			return domain.ErrNotReceiver
		}
		if c.Status != domain.StatusAwaitingReceipt {
			return domain.ErrWrongState
		}

		txn, err := r.Contracts.GetDisbursedByContractForUpdate(ctx, c.ContractID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNoDisbursement
			}
			return err
		}
		txn.Status = domain.TxnConfirmed
		if err := r.Contracts.SaveTransaction(ctx, txn); err != nil {
			return err
		}

		now := time.Now().UTC()
		end := now.Add(time.Duration(c.TenorDays) * 24 * time.Hour)
		c.StartDate = &now
		c.EndDate = &end
		c.Status = domain.StatusActive
		if err := r.Contracts.Save(ctx, c); err != nil {
			return err
		}
		notify.PushAll(ctx, r.Notifications, transitionEvents(c, domain.StatusActive))
		out = c
		return nil
	})
	return out, err
}

// InitiateRepayment starts a gateway payment of principal plus interest for
// an active loan. The contract itself only changes when the gateway reports
// completion (settlement path).
func (u *Usecase) InitiateRepayment(ctx context.Context, receiverID, contractID string) (string, error) {
	c, err := u.get(ctx, contractID)
	if err != nil {
		return "", err
	}
	if c.ReceiverID != receiverID {
		return "", domain.ErrNotReceiver
	}
	if c.Status != domain.StatusActive {
		return "", domain.ErrWrongState
	}
	amount := float64(c.Principal) + float64(c.Principal)*c.InterestRate/100
	return u.gateway.Initiate(ctx, c.ContractID, receiverID, amount)
}

// GuarantorPay initiates the guarantor's recovery payment after a default:
// exactly half the principal, accounted out of band.
func (u *Usecase) GuarantorPay(ctx context.Context, guarantorID, contractID string) (string, error) {
	c, err := u.get(ctx, contractID)
	if err != nil {
		return "", err
	}
	if c.GuarantorID != guarantorID {
		return "", domain.ErrNotGuarantor
	}
	if c.Status != domain.StatusDefault {
		return "", domain.ErrWrongState
	}
	liability := float64(c.Principal) * 0.5
	return u.gateway.Initiate(ctx, c.ContractID, guarantorID, liability)
}

// Get returns the contract to one of its parties.
func (u *Usecase) Get(ctx context.Context, actorID, contractID string) (*domain.Contract, error) {
	c, err := u.get(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if _, ok := c.PartyOf(actorID); !ok {
		return nil, domain.ErrNotAParty
	}
	return c, nil
}

// DisbursalProof returns the pending DISBURSED transaction to the receiver
// while the contract awaits receipt confirmation.
func (u *Usecase) DisbursalProof(ctx context.Context, receiverID, contractID string) (*domain.Transaction, error) {
	var out *domain.Transaction
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Contracts.GetByContractID(ctx, contractID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if c.ReceiverID != receiverID {
			return domain.ErrNotReceiver
		}
		if c.Status != domain.StatusAwaitingReceipt {
			return domain.ErrWrongState
		}
		txn, err := r.Contracts.GetDisbursedByContract(ctx, c.ContractID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNoDisbursement
			}
			return err
		}
		out = txn
		return nil
	})
	return out, err
}

func (u *Usecase) get(ctx context.Context, contractID string) (*domain.Contract, error) {
	var out *domain.Contract
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Contracts.GetByContractID(ctx, contractID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		out = c
		return nil
	})
	return out, err
}
