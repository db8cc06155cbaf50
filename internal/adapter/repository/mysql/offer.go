package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	offerDomain "trustlend-backend/internal/domain/offer"
)

type OfferRepository struct{ db *gorm.DB }

func NewOfferRepository(db *gorm.DB) *OfferRepository { return &OfferRepository{db: db} }

func (r *OfferRepository) Create(ctx context.Context, o *offerDomain.Offer) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OfferRepository) GetByOfferID(ctx context.Context, offerID string) (*offerDomain.Offer, error) {
	var out offerDomain.Offer
	res := r.db.WithContext(ctx).Where("offer_id = ?", offerID).First(&out)
	return &out, res.Error
}

func (r *OfferRepository) GetByOfferIDForUpdate(ctx context.Context, offerID string) (*offerDomain.Offer, error) {
	var out offerDomain.Offer
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("offer_id = ?", offerID).
		First(&out)
	return &out, res.Error
}

func (r *OfferRepository) Save(ctx context.Context, o *offerDomain.Offer) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *OfferRepository) Delete(ctx context.Context, o *offerDomain.Offer) error {
	return r.db.WithContext(ctx).Delete(o).Error
}

func (r *OfferRepository) ListActiveByIDs(ctx context.Context, offerIDs []string) ([]offerDomain.Offer, error) {
	var out []offerDomain.Offer
	res := r.db.WithContext(ctx).
		Where("offer_id IN ? AND active = ?", offerIDs, true).
		Find(&out)
	return out, res.Error
}

func (r *OfferRepository) ListActiveByLender(ctx context.Context, lenderID string) ([]offerDomain.Offer, error) {
	var out []offerDomain.Offer
	res := r.db.WithContext(ctx).
		Where("lender_id = ? AND active = ?", lenderID, true).
		Find(&out)
	return out, res.Error
}

func (r *OfferRepository) FirstOwnedIn(ctx context.Context, lenderID string, offerIDs []string) (*offerDomain.Offer, error) {
	var out offerDomain.Offer
	res := r.db.WithContext(ctx).
		Where("lender_id = ? AND offer_id IN ? AND active = ?", lenderID, offerIDs, true).
		First(&out)
	return &out, res.Error
}
