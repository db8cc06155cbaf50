package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	contractDomain "trustlend-backend/internal/domain/contract"
)

type ContractRepository struct{ db *gorm.DB }

func NewContractRepository(db *gorm.DB) *ContractRepository { return &ContractRepository{db: db} }

func (r *ContractRepository) Create(ctx context.Context, c *contractDomain.Contract) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ContractRepository) GetByContractID(ctx context.Context, contractID string) (*contractDomain.Contract, error) {
	var out contractDomain.Contract
	res := r.db.WithContext(ctx).Where("contract_id = ?", contractID).First(&out)
	return &out, res.Error
}

func (r *ContractRepository) GetByContractIDForUpdate(ctx context.Context, contractID string) (*contractDomain.Contract, error) {
	var out contractDomain.Contract
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("contract_id = ?", contractID).
		First(&out)
	return &out, res.Error
}

func (r *ContractRepository) Save(ctx context.Context, c *contractDomain.Contract) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// UpdateStatusIf is a guarded (compare-and-swap) status move: the UPDATE only
// lands if the row is still in the expected state.
func (r *ContractRepository) UpdateStatusIf(ctx context.Context, contractID string, from, to contractDomain.Status) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&contractDomain.Contract{}).
		Where("contract_id = ? AND status = ?", contractID, from).
		Update("status", to)
	return res.RowsAffected == 1, res.Error
}

func (r *ContractRepository) ListActivePastEnd(ctx context.Context, now time.Time) ([]contractDomain.Contract, error) {
	var out []contractDomain.Contract
	res := r.db.WithContext(ctx).
		Where("status = ? AND end_date < ?", contractDomain.StatusActive, now).
		Find(&out)
	return out, res.Error
}

func (r *ContractRepository) ListAwaitingReceiptStale(ctx context.Context, cutoff time.Time) ([]contractDomain.Contract, error) {
	var out []contractDomain.Contract
	res := r.db.WithContext(ctx).
		Where("status = ? AND updated_at <= ?", contractDomain.StatusAwaitingReceipt, cutoff).
		Find(&out)
	return out, res.Error
}

func (r *ContractRepository) CreateTransaction(ctx context.Context, t *contractDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *ContractRepository) GetDisbursedByContractForUpdate(ctx context.Context, contractID string) (*contractDomain.Transaction, error) {
	var out contractDomain.Transaction
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("contract_id = ? AND status = ?", contractID, contractDomain.TxnDisbursed).
		First(&out)
	return &out, res.Error
}

func (r *ContractRepository) GetDisbursedByContract(ctx context.Context, contractID string) (*contractDomain.Transaction, error) {
	var out contractDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("contract_id = ? AND status = ?", contractID, contractDomain.TxnDisbursed).
		First(&out)
	return &out, res.Error
}

func (r *ContractRepository) SaveTransaction(ctx context.Context, t *contractDomain.Transaction) error {
	return r.db.WithContext(ctx).Save(t).Error
}
