package account

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "trustlend-backend/internal/domain/account"
	"trustlend-backend/internal/domain/uow"
	"trustlend-backend/internal/trustindex"
	"trustlend-backend/pkg/id"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type RegisterInput struct {
	Name string
	Role domain.Role
}

// Register creates a new account at the starting score and its matching
// ceiling.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*domain.Account, error) {
	acc := &domain.Account{
		AccountID:           id.NewID32(),
		Name:                in.Name,
		Role:                in.Role,
		Status:              domain.StatusActive,
		TrustScore:          trustindex.InitialScore,
		EligibleLoanCeiling: trustindex.MaxLoanCeiling(trustindex.InitialScore),
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		return r.Accounts.Create(ctx, acc)
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// Get returns an account's public profile.
func (u *Usecase) Get(ctx context.Context, accountID string) (*domain.Account, error) {
	var out *domain.Account
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		acc, err := r.Accounts.GetByAccountID(ctx, accountID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		out = acc
		return nil
	})
	return out, err
}

// ScoreHistory returns the append-only score ledger for an account, oldest
// first.
func (u *Usecase) ScoreHistory(ctx context.Context, accountID string) ([]domain.ScoreEvent, error) {
	var out []domain.ScoreEvent
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Accounts.GetByAccountID(ctx, accountID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		events, err := r.Accounts.ListScoreEvents(ctx, accountID)
		if err != nil {
			return err
		}
		out = events
		return nil
	})
	return out, err
}
