package ledger

import (
	"context"
	"testing"

	"trustlend-backend/internal/domain/account"
	"trustlend-backend/internal/testutil/accountmock"
	"trustlend-backend/internal/trustindex"
)

func TestApply_ClampsAndRecomputesCeiling(t *testing.T) {
	var savedEvents []account.ScoreEvent
	repo := &accountmock.Repo{
		AppendScoreEventFn: func(ctx context.Context, ev *account.ScoreEvent) error {
			savedEvents = append(savedEvents, *ev)
			return nil
		},
	}

	acc := &account.Account{AccountID: "a", TrustScore: 400, EligibleLoanCeiling: 1000}
	if err := Apply(context.Background(), repo, acc, 20, "Received Endorsement"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if acc.TrustScore != 420 {
		t.Fatalf("score=%d want 420", acc.TrustScore)
	}
	if acc.EligibleLoanCeiling != 1000 {
		t.Fatalf("ceiling=%d want 1000", acc.EligibleLoanCeiling)
	}
	if len(savedEvents) != 1 || savedEvents[0].Delta != 20 || savedEvents[0].Value != 420 {
		t.Fatalf("unexpected history: %+v", savedEvents)
	}
}

func TestApply_ScoreStaysInRange(t *testing.T) {
	repo := &accountmock.Repo{}
	acc := &account.Account{AccountID: "a", TrustScore: 940}

	deltas := []int{50, -2000, 17, 951, -3, 9000}
	for _, d := range deltas {
		if err := Apply(context.Background(), repo, acc, d, "x"); err != nil {
			t.Fatalf("Apply(%d): %v", d, err)
		}
		if acc.TrustScore < trustindex.MinScore || acc.TrustScore > trustindex.MaxScore {
			t.Fatalf("score %d escaped [0,950] after delta %d", acc.TrustScore, d)
		}
		if acc.EligibleLoanCeiling != trustindex.MaxLoanCeiling(acc.TrustScore) {
			t.Fatalf("ceiling drifted: %d vs %d", acc.EligibleLoanCeiling, trustindex.MaxLoanCeiling(acc.TrustScore))
		}
	}
}

// Scenario: removal of an endorsement at score 920 drops the account into the
// next ceiling band.
func TestApply_RemovalAtHighScore(t *testing.T) {
	repo := &accountmock.Repo{}
	acc := &account.Account{AccountID: "a", TrustScore: 920, EligibleLoanCeiling: 20000}

	loss := trustindex.EndorsementRemovalLoss(acc.TrustScore)
	if loss != 30 {
		t.Fatalf("loss=%d want 30", loss)
	}
	if err := Apply(context.Background(), repo, acc, -loss, "Endorsement Removed"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if acc.TrustScore != 890 || acc.EligibleLoanCeiling != 15000 {
		t.Fatalf("got score=%d ceiling=%d want 890/15000", acc.TrustScore, acc.EligibleLoanCeiling)
	}
}
