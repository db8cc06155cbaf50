// Package ledger is the single legal mutation path for an account's trust
// score. Every score-affecting flow (endorsement, repayment, default) funnels
// through Apply inside its own transaction.
package ledger

import (
	"context"
	"time"

	"trustlend-backend/internal/domain/account"
	"trustlend-backend/internal/trustindex"
)

// Apply clamps the delta onto the account's score, appends a history event,
// recomputes the derived loan ceiling and persists the account. The account
// must have been loaded with a row lock by the surrounding transaction.
func Apply(ctx context.Context, repo account.Repository, acc *account.Account, delta int, reason string) error {
	newScore := trustindex.Clamp(acc.TrustScore + delta)
	acc.TrustScore = newScore
	acc.EligibleLoanCeiling = trustindex.MaxLoanCeiling(newScore)

	if err := repo.AppendScoreEvent(ctx, &account.ScoreEvent{
		AccountID: acc.AccountID,
		Value:     newScore,
		Delta:     delta,
		Reason:    reason,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return err
	}
	return repo.Save(ctx, acc)
}
