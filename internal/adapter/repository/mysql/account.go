package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	accountDomain "trustlend-backend/internal/domain/account"
)

type AccountRepository struct{ db *gorm.DB }

func NewAccountRepository(db *gorm.DB) *AccountRepository { return &AccountRepository{db: db} }

func (r *AccountRepository) Create(ctx context.Context, a *accountDomain.Account) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AccountRepository) GetByAccountID(ctx context.Context, accountID string) (*accountDomain.Account, error) {
	var out accountDomain.Account
	res := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&out)
	return &out, res.Error
}

func (r *AccountRepository) GetByAccountIDForUpdate(ctx context.Context, accountID string) (*accountDomain.Account, error) {
	var out accountDomain.Account
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("account_id = ?", accountID).
		First(&out)
	return &out, res.Error
}

func (r *AccountRepository) Save(ctx context.Context, a *accountDomain.Account) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AccountRepository) AppendScoreEvent(ctx context.Context, ev *accountDomain.ScoreEvent) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

func (r *AccountRepository) ListScoreEvents(ctx context.Context, accountID string) ([]accountDomain.ScoreEvent, error) {
	var out []accountDomain.ScoreEvent
	res := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
