package account

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	domain "trustlend-backend/internal/domain/account"
	"trustlend-backend/internal/domain/uow"
	"trustlend-backend/internal/testutil/accountmock"
	"trustlend-backend/internal/testutil/uowmock"
)

func TestRegisterStartsAtInitialScore(t *testing.T) {
	var created *domain.Account
	accounts := &accountmock.Repo{
		CreateFn: func(ctx context.Context, a *domain.Account) error {
			created = a
			return nil
		},
	}
	uc := NewUsecase(uowmock.New(uow.Repos{Accounts: accounts}))

	got, err := uc.Register(context.Background(), RegisterInput{Name: "Siti", Role: domain.RoleReceiver})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if created == nil || created != got {
		t.Fatalf("account not persisted")
	}
	if len(got.AccountID) != 32 {
		t.Fatalf("account id %q not 32 chars", got.AccountID)
	}
	if got.TrustScore != 400 || got.EligibleLoanCeiling != 1000 {
		t.Fatalf("unexpected starting values: score=%d ceiling=%d", got.TrustScore, got.EligibleLoanCeiling)
	}
	if got.Status != domain.StatusActive || got.Role != domain.RoleReceiver {
		t.Fatalf("unexpected account: %+v", got)
	}
}

func TestGetMapsRecordNotFound(t *testing.T) {
	accounts := &accountmock.Repo{
		GetByAccountIDFn: func(ctx context.Context, accountID string) (*domain.Account, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(uowmock.New(uow.Repos{Accounts: accounts}))

	_, err := uc.Get(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestScoreHistoryRequiresAccount(t *testing.T) {
	listed := false
	accounts := &accountmock.Repo{
		GetByAccountIDFn: func(ctx context.Context, accountID string) (*domain.Account, error) {
			return nil, gorm.ErrRecordNotFound
		},
		ListScoreEventsFn: func(ctx context.Context, accountID string) ([]domain.ScoreEvent, error) {
			listed = true
			return nil, nil
		},
	}
	uc := NewUsecase(uowmock.New(uow.Repos{Accounts: accounts}))

	_, err := uc.ScoreHistory(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if listed {
		t.Fatalf("must not list events for a missing account")
	}
}

func TestScoreHistoryReturnsLedger(t *testing.T) {
	accountID := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	accounts := &accountmock.Repo{
		GetByAccountIDFn: func(ctx context.Context, id string) (*domain.Account, error) {
			return &domain.Account{AccountID: id}, nil
		},
		ListScoreEventsFn: func(ctx context.Context, id string) ([]domain.ScoreEvent, error) {
			return []domain.ScoreEvent{
				{AccountID: id, Value: 420, Delta: 20, Reason: "endorsement received"},
				{AccountID: id, Value: 429, Delta: 9, Reason: "repayment"},
			}, nil
		},
	}
	uc := NewUsecase(uowmock.New(uow.Repos{Accounts: accounts}))

	events, err := uc.ScoreHistory(context.Background(), accountID)
	if err != nil {
		t.Fatalf("ScoreHistory: %v", err)
	}
	if len(events) != 2 || events[1].Value != 429 {
		t.Fatalf("unexpected ledger: %+v", events)
	}
}
