// Package notify records fire-and-forget notification events. Failures are
// logged and swallowed: a missed notification must never fail or roll back
// the business operation that produced it.
package notify

import (
	"context"

	"github.com/sirupsen/logrus"

	"trustlend-backend/internal/domain/notification"
	"trustlend-backend/pkg/id"
)

// Event is one pending notification, produced by a state transition.
type Event struct {
	AccountID string
	Message   string
	Link      string
}

// Push persists a single notification, best effort.
func Push(ctx context.Context, repo notification.Repository, accountID, message, link string) {
	err := repo.Create(ctx, &notification.Notification{
		NotificationID: id.NewID32(),
		AccountID:      accountID,
		Message:        message,
		Link:           link,
	})
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).
			Warn("failed to record notification")
	}
}

// PushAll persists a batch of events, best effort.
func PushAll(ctx context.Context, repo notification.Repository, events []Event) {
	for _, ev := range events {
		Push(ctx, repo, ev.AccountID, ev.Message, ev.Link)
	}
}
