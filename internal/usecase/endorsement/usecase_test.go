package endorsement

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	accdomain "trustlend-backend/internal/domain/account"
	domain "trustlend-backend/internal/domain/endorsement"
	"trustlend-backend/internal/domain/uow"
	"trustlend-backend/internal/testutil/accountmock"
	"trustlend-backend/internal/testutil/endorsementmock"
	"trustlend-backend/internal/testutil/notificationmock"
	"trustlend-backend/internal/testutil/uowmock"
)

const (
	endorserID = "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee"
	receiverID = "cccccccccccccccccccccccccccccccc"
)

func newFixture(edges *endorsementmock.Repo, accounts *accountmock.Repo) *Usecase {
	return NewUsecase(uowmock.New(uow.Repos{
		Accounts:      accounts,
		Endorsements:  edges,
		Notifications: &notificationmock.Repo{},
	}))
}

// anyAccounts resolves every locked read to a plain active account.
func anyAccounts() *accountmock.Repo {
	return &accountmock.Repo{
		GetByAccountIDForUpdateFn: func(ctx context.Context, id string) (*accdomain.Account, error) {
			return &accdomain.Account{AccountID: id, TrustScore: 400, EligibleLoanCeiling: 1000}, nil
		},
	}
}

func TestEndorse_Self(t *testing.T) {
	uc := newFixture(&endorsementmock.Repo{}, &accountmock.Repo{})
	if err := uc.Endorse(context.Background(), endorserID, endorserID); !errors.Is(err, domain.ErrSelfEndorsement) {
		t.Fatalf("err=%v want ErrSelfEndorsement", err)
	}
}

func TestEndorse_AlreadyEndorsed(t *testing.T) {
	edges := &endorsementmock.Repo{
		GetPairFn: func(ctx context.Context, e, rcv string) (*domain.Edge, error) {
			return &domain.Edge{EndorserID: e, ReceiverID: rcv, Status: domain.StatusActive}, nil
		},
	}
	uc := newFixture(edges, anyAccounts())
	if err := uc.Endorse(context.Background(), endorserID, receiverID); !errors.Is(err, domain.ErrAlreadyEndorsed) {
		t.Fatalf("err=%v want ErrAlreadyEndorsed", err)
	}
}

func TestEndorse_PermanentlyBlockedAfterRemoval(t *testing.T) {
	edges := &endorsementmock.Repo{
		GetPairFn: func(ctx context.Context, e, rcv string) (*domain.Edge, error) {
			return &domain.Edge{EndorserID: e, ReceiverID: rcv, Status: domain.StatusRemoved}, nil
		},
	}
	uc := newFixture(edges, anyAccounts())
	if err := uc.Endorse(context.Background(), endorserID, receiverID); !errors.Is(err, domain.ErrPermanentlyBlocked) {
		t.Fatalf("err=%v want ErrPermanentlyBlocked", err)
	}
}

func TestEndorse_QuotaExceeded(t *testing.T) {
	now := time.Now().UTC()
	recent := make([]domain.Edge, 4)
	for i := range recent {
		recent[i] = domain.Edge{
			EndorserID: endorserID,
			Status:     domain.StatusActive,
			CreatedAt:  now.Add(-time.Duration(i+1) * 24 * time.Hour),
		}
	}
	edges := &endorsementmock.Repo{
		GetPairFn: func(ctx context.Context, e, rcv string) (*domain.Edge, error) {
			return nil, gorm.ErrRecordNotFound
		},
		ListActiveByEndorserFn: func(ctx context.Context, e string) ([]domain.Edge, error) {
			return recent, nil
		},
	}
	uc := newFixture(edges, anyAccounts())
	if err := uc.Endorse(context.Background(), endorserID, receiverID); !errors.Is(err, domain.ErrQuotaExceeded) {
		t.Fatalf("err=%v want ErrQuotaExceeded", err)
	}
}

func TestEndorse_QuotaIgnoresOldEdges(t *testing.T) {
	now := time.Now().UTC()
	old := make([]domain.Edge, 4)
	for i := range old {
		old[i] = domain.Edge{
			EndorserID: endorserID,
			Status:     domain.StatusActive,
			CreatedAt:  now.Add(-time.Duration(31+i) * 24 * time.Hour),
		}
	}
	var created *domain.Edge
	edges := &endorsementmock.Repo{
		GetPairFn: func(ctx context.Context, e, rcv string) (*domain.Edge, error) {
			return nil, gorm.ErrRecordNotFound
		},
		ListActiveByEndorserFn: func(ctx context.Context, e string) ([]domain.Edge, error) {
			return old, nil
		},
		CreateFn: func(ctx context.Context, e *domain.Edge) error {
			created = e
			return nil
		},
	}
	acc := &accdomain.Account{AccountID: receiverID, TrustScore: 400}
	accounts := &accountmock.Repo{
		GetByAccountIDForUpdateFn: func(ctx context.Context, id string) (*accdomain.Account, error) {
			return acc, nil
		},
	}
	uc := newFixture(edges, accounts)
	if err := uc.Endorse(context.Background(), endorserID, receiverID); err != nil {
		t.Fatalf("Endorse: %v", err)
	}
	if created == nil || created.Status != domain.StatusActive {
		t.Fatalf("edge not created: %+v", created)
	}
}

// Scenario: score 400 endorsed once -> +20, ceiling 1000.
func TestEndorse_GrantsTierGain(t *testing.T) {
	acc := &accdomain.Account{AccountID: receiverID, TrustScore: 400, EligibleLoanCeiling: 1000}
	edges := &endorsementmock.Repo{
		GetPairFn: func(ctx context.Context, e, rcv string) (*domain.Edge, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	accounts := &accountmock.Repo{
		GetByAccountIDForUpdateFn: func(ctx context.Context, id string) (*accdomain.Account, error) {
			if id == receiverID {
				return acc, nil
			}
			return &accdomain.Account{AccountID: id, TrustScore: 500}, nil
		},
	}
	uc := newFixture(edges, accounts)
	if err := uc.Endorse(context.Background(), endorserID, receiverID); err != nil {
		t.Fatalf("Endorse: %v", err)
	}
	if acc.TrustScore != 420 || acc.EligibleLoanCeiling != 1000 {
		t.Fatalf("score=%d ceiling=%d want 420/1000", acc.TrustScore, acc.EligibleLoanCeiling)
	}
}

func TestEndorse_ConcurrentDuplicateIsConflict(t *testing.T) {
	edges := &endorsementmock.Repo{
		GetPairFn: func(ctx context.Context, e, rcv string) (*domain.Edge, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, e *domain.Edge) error {
			return gorm.ErrDuplicatedKey
		},
	}
	accounts := &accountmock.Repo{
		GetByAccountIDForUpdateFn: func(ctx context.Context, id string) (*accdomain.Account, error) {
			return &accdomain.Account{AccountID: id, TrustScore: 400}, nil
		},
	}
	uc := newFixture(edges, accounts)
	if err := uc.Endorse(context.Background(), endorserID, receiverID); !errors.Is(err, uow.ErrConflict) {
		t.Fatalf("err=%v want ErrConflict", err)
	}
}

func TestUnendorse_NoActiveEdge(t *testing.T) {
	edges := &endorsementmock.Repo{
		GetActivePairForUpdateFn: func(ctx context.Context, e, rcv string) (*domain.Edge, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := newFixture(edges, &accountmock.Repo{})
	if err := uc.Unendorse(context.Background(), endorserID, receiverID); !errors.Is(err, domain.ErrNoActiveEndorsement) {
		t.Fatalf("err=%v want ErrNoActiveEndorsement", err)
	}
}

// Scenario: score 920 loses an endorsement -> -30, ceiling back to 15000.
func TestUnendorse_AppliesTierLossAndMarksRemoved(t *testing.T) {
	acc := &accdomain.Account{AccountID: receiverID, TrustScore: 920, EligibleLoanCeiling: 20000}
	edge := &domain.Edge{EndorserID: endorserID, ReceiverID: receiverID, Status: domain.StatusActive}
	var saved *domain.Edge
	edges := &endorsementmock.Repo{
		GetActivePairForUpdateFn: func(ctx context.Context, e, rcv string) (*domain.Edge, error) {
			return edge, nil
		},
		SaveFn: func(ctx context.Context, e *domain.Edge) error {
			saved = e
			return nil
		},
	}
	accounts := &accountmock.Repo{
		GetByAccountIDForUpdateFn: func(ctx context.Context, id string) (*accdomain.Account, error) {
			return acc, nil
		},
	}
	uc := newFixture(edges, accounts)
	if err := uc.Unendorse(context.Background(), endorserID, receiverID); err != nil {
		t.Fatalf("Unendorse: %v", err)
	}
	if acc.TrustScore != 890 || acc.EligibleLoanCeiling != 15000 {
		t.Fatalf("score=%d ceiling=%d want 890/15000", acc.TrustScore, acc.EligibleLoanCeiling)
	}
	if saved == nil || saved.Status != domain.StatusRemoved {
		t.Fatalf("edge not marked REMOVED: %+v", saved)
	}
}

func TestEndorse_UnknownEndorser(t *testing.T) {
	edges := &endorsementmock.Repo{}
	accounts := &accountmock.Repo{
		GetByAccountIDForUpdateFn: func(ctx context.Context, id string) (*accdomain.Account, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := newFixture(edges, accounts)
	if err := uc.Endorse(context.Background(), endorserID, receiverID); !errors.Is(err, accdomain.ErrNotFound) {
		t.Fatalf("err=%v want account.ErrNotFound", err)
	}
}

func TestEndorse_LocksEndorserBeforeQuotaCount(t *testing.T) {
	var calls []string
	edges := &endorsementmock.Repo{
		GetPairFn: func(ctx context.Context, e, rcv string) (*domain.Edge, error) {
			return nil, gorm.ErrRecordNotFound
		},
		ListActiveByEndorserFn: func(ctx context.Context, e string) ([]domain.Edge, error) {
			calls = append(calls, "count")
			return nil, nil
		},
	}
	accounts := &accountmock.Repo{
		GetByAccountIDForUpdateFn: func(ctx context.Context, id string) (*accdomain.Account, error) {
			calls = append(calls, "lock:"+id)
			return &accdomain.Account{AccountID: id, TrustScore: 400}, nil
		},
	}
	uc := newFixture(edges, accounts)
	if err := uc.Endorse(context.Background(), endorserID, receiverID); err != nil {
		t.Fatalf("Endorse: %v", err)
	}
	if len(calls) == 0 || calls[0] != "lock:"+endorserID {
		t.Fatalf("endorser row must be the first locked read, got %v", calls)
	}
}

// Two endorse flows by the same endorser to different receivers, started with
// 3 edges already in the window: the endorser row lock serializes them, so
// exactly one lands the 4th edge and the other sees it and hits the quota.
func TestEndorse_QuotaHoldsAcrossInterleavedEndorsements(t *testing.T) {
	now := time.Now().UTC()
	var endorserRow sync.Mutex // stands in for the endorser's row lock
	edges := make([]domain.Edge, 0, 5)
	for i := 0; i < 3; i++ {
		edges = append(edges, domain.Edge{
			EndorserID: endorserID,
			Status:     domain.StatusActive,
			CreatedAt:  now.Add(-time.Duration(i+1) * 24 * time.Hour),
		})
	}

	edgeRepo := &endorsementmock.Repo{
		GetPairFn: func(ctx context.Context, e, rcv string) (*domain.Edge, error) {
			return nil, gorm.ErrRecordNotFound
		},
		ListActiveByEndorserFn: func(ctx context.Context, e string) ([]domain.Edge, error) {
			return append([]domain.Edge(nil), edges...), nil
		},
		CreateFn: func(ctx context.Context, e *domain.Edge) error {
			committed := *e
			committed.CreatedAt = time.Now().UTC()
			edges = append(edges, committed)
			return nil
		},
	}
	accounts := &accountmock.Repo{
		GetByAccountIDForUpdateFn: func(ctx context.Context, id string) (*accdomain.Account, error) {
			if id == endorserID {
				endorserRow.Lock()
			}
			return &accdomain.Account{AccountID: id, TrustScore: 400}, nil
		},
	}
	m := &uowmock.UoW{Repos: uow.Repos{
		Accounts:      accounts,
		Endorsements:  edgeRepo,
		Notifications: &notificationmock.Repo{},
	}}
	// row locks release when the transaction ends
	m.WithinTxFn = func(ctx context.Context, fn func(r uow.Repos) error) error {
		defer endorserRow.Unlock()
		return fn(m.Repos)
	}
	uc := NewUsecase(m)

	results := make(chan error, 2)
	for _, rcv := range []string{receiverID, "dddddddddddddddddddddddddddddddd"} {
		go func(rcv string) {
			results <- uc.Endorse(context.Background(), endorserID, rcv)
		}(rcv)
	}

	var ok, quota int
	for i := 0; i < 2; i++ {
		switch err := <-results; {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrQuotaExceeded):
			quota++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || quota != 1 {
		t.Fatalf("ok=%d quota=%d want exactly one of each", ok, quota)
	}
	if len(edges) != 4 {
		t.Fatalf("edge count=%d want 4", len(edges))
	}
}
