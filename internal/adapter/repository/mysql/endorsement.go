package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	endorsementDomain "trustlend-backend/internal/domain/endorsement"
)

type EndorsementRepository struct{ db *gorm.DB }

func NewEndorsementRepository(db *gorm.DB) *EndorsementRepository {
	return &EndorsementRepository{db: db}
}

func (r *EndorsementRepository) Create(ctx context.Context, e *endorsementDomain.Edge) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EndorsementRepository) GetPair(ctx context.Context, endorserID, receiverID string) (*endorsementDomain.Edge, error) {
	var out endorsementDomain.Edge
	res := r.db.WithContext(ctx).
		Where("endorser_id = ? AND receiver_id = ?", endorserID, receiverID).
		First(&out)
	return &out, res.Error
}

func (r *EndorsementRepository) GetActivePairForUpdate(ctx context.Context, endorserID, receiverID string) (*endorsementDomain.Edge, error) {
	var out endorsementDomain.Edge
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("endorser_id = ? AND receiver_id = ? AND status = ?",
			endorserID, receiverID, endorsementDomain.StatusActive).
		First(&out)
	return &out, res.Error
}

func (r *EndorsementRepository) Save(ctx context.Context, e *endorsementDomain.Edge) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EndorsementRepository) ListActiveByEndorser(ctx context.Context, endorserID string) ([]endorsementDomain.Edge, error) {
	var out []endorsementDomain.Edge
	res := r.db.WithContext(ctx).
		Where("endorser_id = ? AND status = ?", endorserID, endorsementDomain.StatusActive).
		Find(&out)
	return out, res.Error
}

func (r *EndorsementRepository) ListActiveEndorserIDs(ctx context.Context, receiverID string) ([]string, error) {
	var out []string
	res := r.db.WithContext(ctx).
		Model(&endorsementDomain.Edge{}).
		Where("receiver_id = ? AND status = ?", receiverID, endorsementDomain.StatusActive).
		Pluck("endorser_id", &out)
	return out, res.Error
}
