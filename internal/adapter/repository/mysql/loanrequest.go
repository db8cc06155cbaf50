package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	requestDomain "trustlend-backend/internal/domain/loanrequest"
)

type LoanRequestRepository struct{ db *gorm.DB }

func NewLoanRequestRepository(db *gorm.DB) *LoanRequestRepository {
	return &LoanRequestRepository{db: db}
}

func (r *LoanRequestRepository) Create(ctx context.Context, lr *requestDomain.LoanRequest) error {
	return r.db.WithContext(ctx).Create(lr).Error
}

func (r *LoanRequestRepository) GetByRequestID(ctx context.Context, requestID string) (*requestDomain.LoanRequest, error) {
	var out requestDomain.LoanRequest
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

func (r *LoanRequestRepository) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*requestDomain.LoanRequest, error) {
	var out requestDomain.LoanRequest
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("request_id = ?", requestID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRequestRepository) GetOpenByReceiver(ctx context.Context, receiverID string) (*requestDomain.LoanRequest, error) {
	var out requestDomain.LoanRequest
	res := r.db.WithContext(ctx).
		Where("receiver_id = ? AND status IN ?", receiverID, requestDomain.OpenStatuses()).
		Order("id DESC").
		First(&out)
	return &out, res.Error
}

func (r *LoanRequestRepository) ListByStatus(ctx context.Context, status requestDomain.Status) ([]requestDomain.LoanRequest, error) {
	var out []requestDomain.LoanRequest
	res := r.db.WithContext(ctx).Where("status = ?", status).Find(&out)
	return out, res.Error
}

func (r *LoanRequestRepository) ExistsOpenReferencingOffer(ctx context.Context, offerID string) (bool, error) {
	// offer_ids is a JSON array of 32-hex strings; a LIKE on the quoted id
	// is exact because ids never substring-collide at full length.
	var n int64
	res := r.db.WithContext(ctx).
		Model(&requestDomain.LoanRequest{}).
		Where("status IN ? AND offer_ids LIKE ?", requestDomain.OpenStatuses(), `%"`+offerID+`"%`).
		Count(&n)
	return n > 0, res.Error
}

func (r *LoanRequestRepository) Save(ctx context.Context, lr *requestDomain.LoanRequest) error {
	return r.db.WithContext(ctx).Save(lr).Error
}

func (r *LoanRequestRepository) CreateGuarantorRequest(ctx context.Context, gr *requestDomain.GuarantorRequest) error {
	return r.db.WithContext(ctx).Create(gr).Error
}

func (r *LoanRequestRepository) GetGuarantorRequestByID(ctx context.Context, id string) (*requestDomain.GuarantorRequest, error) {
	var out requestDomain.GuarantorRequest
	res := r.db.WithContext(ctx).Where("guarantor_request_id = ?", id).First(&out)
	return &out, res.Error
}

func (r *LoanRequestRepository) GetGuarantorRequestByIDForUpdate(ctx context.Context, id string) (*requestDomain.GuarantorRequest, error) {
	var out requestDomain.GuarantorRequest
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("guarantor_request_id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *LoanRequestRepository) SaveGuarantorRequest(ctx context.Context, gr *requestDomain.GuarantorRequest) error {
	return r.db.WithContext(ctx).Save(gr).Error
}
