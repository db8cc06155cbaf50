package loanrequestmock

import (
	"context"

	domain "trustlend-backend/internal/domain/loanrequest"
)

// Repo is a function-backed mock that satisfies loanrequest.Repository.
type Repo struct {
	CreateFn                           func(ctx context.Context, lr *domain.LoanRequest) error
	GetByRequestIDFn                   func(ctx context.Context, requestID string) (*domain.LoanRequest, error)
	GetByRequestIDForUpdateFn          func(ctx context.Context, requestID string) (*domain.LoanRequest, error)
	GetOpenByReceiverFn                func(ctx context.Context, receiverID string) (*domain.LoanRequest, error)
	ListByStatusFn                     func(ctx context.Context, status domain.Status) ([]domain.LoanRequest, error)
	ExistsOpenReferencingOfferFn       func(ctx context.Context, offerID string) (bool, error)
	SaveFn                             func(ctx context.Context, lr *domain.LoanRequest) error
	CreateGuarantorRequestFn           func(ctx context.Context, gr *domain.GuarantorRequest) error
	GetGuarantorRequestByIDFn          func(ctx context.Context, id string) (*domain.GuarantorRequest, error)
	GetGuarantorRequestByIDForUpdateFn func(ctx context.Context, id string) (*domain.GuarantorRequest, error)
	SaveGuarantorRequestFn             func(ctx context.Context, gr *domain.GuarantorRequest) error
}

func (m *Repo) Create(ctx context.Context, lr *domain.LoanRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, lr)
	}
	return nil
}

func (m *Repo) GetByRequestID(ctx context.Context, requestID string) (*domain.LoanRequest, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*domain.LoanRequest, error) {
	if m.GetByRequestIDForUpdateFn != nil {
		return m.GetByRequestIDForUpdateFn(ctx, requestID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetOpenByReceiver(ctx context.Context, receiverID string) (*domain.LoanRequest, error) {
	if m.GetOpenByReceiverFn != nil {
		return m.GetOpenByReceiverFn(ctx, receiverID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByStatus(ctx context.Context, status domain.Status) ([]domain.LoanRequest, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status)
	}
	return nil, nil
}

func (m *Repo) ExistsOpenReferencingOffer(ctx context.Context, offerID string) (bool, error) {
	if m.ExistsOpenReferencingOfferFn != nil {
		return m.ExistsOpenReferencingOfferFn(ctx, offerID)
	}
	return false, nil
}

func (m *Repo) Save(ctx context.Context, lr *domain.LoanRequest) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, lr)
	}
	return nil
}

func (m *Repo) CreateGuarantorRequest(ctx context.Context, gr *domain.GuarantorRequest) error {
	if m.CreateGuarantorRequestFn != nil {
		return m.CreateGuarantorRequestFn(ctx, gr)
	}
	return nil
}

func (m *Repo) GetGuarantorRequestByID(ctx context.Context, id string) (*domain.GuarantorRequest, error) {
	if m.GetGuarantorRequestByIDFn != nil {
		return m.GetGuarantorRequestByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetGuarantorRequestByIDForUpdate(ctx context.Context, id string) (*domain.GuarantorRequest, error) {
	if m.GetGuarantorRequestByIDForUpdateFn != nil {
		return m.GetGuarantorRequestByIDForUpdateFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) SaveGuarantorRequest(ctx context.Context, gr *domain.GuarantorRequest) error {
	if m.SaveGuarantorRequestFn != nil {
		return m.SaveGuarantorRequestFn(ctx, gr)
	}
	return nil
}
