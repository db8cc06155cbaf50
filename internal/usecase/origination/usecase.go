package origination

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"trustlend-backend/internal/domain/account"
	contractdomain "trustlend-backend/internal/domain/contract"
	domain "trustlend-backend/internal/domain/loanrequest"
	"trustlend-backend/internal/domain/uow"
	"trustlend-backend/internal/trustindex"
	contractuc "trustlend-backend/internal/usecase/contract"
	"trustlend-backend/internal/usecase/notify"
	"trustlend-backend/pkg/id"
)

// Usecase drives the request → guarantor approval → lender acceptance
// pipeline. Lender acceptance hands off to the contract usecase inside the
// same transaction.
type Usecase struct {
	uow       uow.UnitOfWork
	contracts *contractuc.Usecase
}

func NewUsecase(tx uow.UnitOfWork, contracts *contractuc.Usecase) *Usecase {
	return &Usecase{uow: tx, contracts: contracts}
}

// CreateLoanRequest opens a receiver's application against 1-3 offers.
func (u *Usecase) CreateLoanRequest(ctx context.Context, receiverID string, offerIDs []string) (*domain.LoanRequest, error) {
	if len(offerIDs) == 0 || len(offerIDs) > 3 {
		return nil, domain.ErrInvalidOffer
	}

	var out *domain.LoanRequest
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		receiver, err := r.Accounts.GetByAccountID(ctx, receiverID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return account.ErrNotFound
			}
			return err
		}
		if receiver.Role != account.RoleReceiver {
			return account.ErrWrongRole
		}
		if receiver.Status == account.StatusBlocked {
			return account.ErrBlocked
		}

		if _, err := r.LoanRequests.GetOpenByReceiver(ctx, receiverID); err == nil {
			return domain.ErrDuplicateActiveRequest
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		offers, err := r.Offers.ListActiveByIDs(ctx, offerIDs)
		if err != nil {
			return err
		}
		if len(offers) != len(offerIDs) {
			return domain.ErrInvalidOffer
		}

		ceiling := trustindex.MaxLoanCeiling(receiver.TrustScore)
		for _, o := range offers {
			if o.Amount > ceiling {
				return domain.ErrEligibilityExceeded
			}
		}

		lr := &domain.LoanRequest{
			RequestID:       id.NewID32(),
			ReceiverID:      receiverID,
			OfferIDs:        offerIDs,
			GuarantorStatus: domain.GuarantorPending,
			Status:          domain.StatusPending,
		}
		if err := r.LoanRequests.Create(ctx, lr); err != nil {
			return err
		}
		out = lr
		return nil
	})
	return out, err
}

// RequestGuarantor asks an existing endorser to guarantee a pending request.
func (u *Usecase) RequestGuarantor(ctx context.Context, receiverID, guarantorID, requestID string) (*domain.GuarantorRequest, error) {
	if receiverID == guarantorID {
		return nil, domain.ErrSelfGuarantee
	}

	var out *domain.GuarantorRequest
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		endorserIDs, err := r.Endorsements.ListActiveEndorserIDs(ctx, receiverID)
		if err != nil {
			return err
		}
		if !contains(endorserIDs, guarantorID) {
			return domain.ErrNotAnEndorser
		}

		lr, err := r.LoanRequests.GetByRequestIDForUpdate(ctx, requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if lr.ReceiverID != receiverID {
			return domain.ErrNotFound
		}
		if lr.Status != domain.StatusPending {
			return domain.ErrRequestNotPending
		}

		gr := &domain.GuarantorRequest{
			GuarantorRequestID: id.NewID32(),
			RequestID:          lr.RequestID,
			GuarantorID:        guarantorID,
			ReceiverID:         receiverID,
			Status:             domain.GuarantorPending,
		}
		if err := r.LoanRequests.CreateGuarantorRequest(ctx, gr); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicateGuarantorReq
			}
			return err
		}

		notify.Push(ctx, r.Notifications, guarantorID,
			"You have been asked to guarantee a loan.", "/guarantor-requests/"+gr.GuarantorRequestID)
		out = gr
		return nil
	})
	return out, err
}

// RespondToGuarantorRequest records the guarantor's accept or decline.
// Acceptance makes the loan request visible to lenders; a decline resets the
// request so the receiver can ask someone else.
func (u *Usecase) RespondToGuarantorRequest(ctx context.Context, guarantorID, guarantorRequestID string, accept bool) (*domain.GuarantorRequest, error) {
	var out *domain.GuarantorRequest
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		gr, err := r.LoanRequests.GetGuarantorRequestByIDForUpdate(ctx, guarantorRequestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if gr.GuarantorID != guarantorID {
			return domain.ErrNotAuthorized
		}
		if gr.Status != domain.GuarantorPending {
			return domain.ErrAlreadyResolved
		}

		lr, err := r.LoanRequests.GetByRequestIDForUpdate(ctx, gr.RequestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		if accept {
			gr.Status = domain.GuarantorAccepted
			g := guarantorID
			lr.GuarantorID = &g
			lr.GuarantorStatus = domain.GuarantorAccepted
			lr.Status = domain.StatusGuarantorAccepted
		} else {
			gr.Status = domain.GuarantorDeclined
			lr.GuarantorID = nil
			lr.GuarantorStatus = domain.GuarantorDeclined
			// status stays PENDING so the receiver can pick another guarantor
		}
		if err := r.LoanRequests.SaveGuarantorRequest(ctx, gr); err != nil {
			return err
		}
		if err := r.LoanRequests.Save(ctx, lr); err != nil {
			return err
		}

		msg := "Your guarantor request was declined."
		if accept {
			msg = "Your guarantor request was accepted. Lenders can now see your application."
		}
		notify.Push(ctx, r.Notifications, lr.ReceiverID, msg, "/loan-requests/"+lr.RequestID)
		out = gr
		return nil
	})
	return out, err
}

// AcceptByLender matches one of the lender's offers to the request and
// creates the contract. The status flip and the contract creation commit or
// roll back together: a document failure leaves the request untouched.
func (u *Usecase) AcceptByLender(ctx context.Context, lenderID, requestID string) (*contractdomain.Contract, error) {
	var out *contractdomain.Contract
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		lr, err := r.LoanRequests.GetByRequestIDForUpdate(ctx, requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if lr.Status != domain.StatusGuarantorAccepted {
			return domain.ErrInvalidState
		}

		off, err := r.Offers.FirstOwnedIn(ctx, lenderID, lr.OfferIDs)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotOwner
			}
			return err
		}

		selected := off.OfferID
		lr.SelectedOfferID = &selected
		lr.Status = domain.StatusContracting
		if err := r.LoanRequests.Save(ctx, lr); err != nil {
			return err
		}

		c, err := u.contracts.CreateForRequest(ctx, r, lr, off)
		if err != nil {
			return err
		}
		out = c
		return nil
	})
	return out, err
}

// LenderInbox lists requests with an accepted guarantor that reference one of
// the lender's active offers.
func (u *Usecase) LenderInbox(ctx context.Context, lenderID string) ([]domain.LoanRequest, error) {
	var out []domain.LoanRequest
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		offers, err := r.Offers.ListActiveByLender(ctx, lenderID)
		if err != nil {
			return err
		}
		mine := make(map[string]bool, len(offers))
		for _, o := range offers {
			mine[o.OfferID] = true
		}

		requests, err := r.LoanRequests.ListByStatus(ctx, domain.StatusGuarantorAccepted)
		if err != nil {
			return err
		}
		for _, lr := range requests {
			for _, oid := range lr.OfferIDs {
				if mine[oid] {
					out = append(out, lr)
					break
				}
			}
		}
		return nil
	})
	return out, err
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
