package loanrequest

import "context"

type Repository interface {
	Create(ctx context.Context, lr *LoanRequest) error
	GetByRequestID(ctx context.Context, requestID string) (*LoanRequest, error)
	GetByRequestIDForUpdate(ctx context.Context, requestID string) (*LoanRequest, error)
	// GetOpenByReceiver returns the receiver's loan request in an open
	// (PENDING/GUARANTOR_ACCEPTED/CONTRACTING) state, if any.
	GetOpenByReceiver(ctx context.Context, receiverID string) (*LoanRequest, error)
	// ListByStatus is used for the lender inbox (GUARANTOR_ACCEPTED).
	ListByStatus(ctx context.Context, status Status) ([]LoanRequest, error)
	// ExistsOpenReferencingOffer reports whether any open request references
	// the given offer, which locks the offer against edits.
	ExistsOpenReferencingOffer(ctx context.Context, offerID string) (bool, error)
	Save(ctx context.Context, lr *LoanRequest) error

	CreateGuarantorRequest(ctx context.Context, gr *GuarantorRequest) error
	GetGuarantorRequestByID(ctx context.Context, guarantorRequestID string) (*GuarantorRequest, error)
	GetGuarantorRequestByIDForUpdate(ctx context.Context, guarantorRequestID string) (*GuarantorRequest, error)
	SaveGuarantorRequest(ctx context.Context, gr *GuarantorRequest) error
}
