package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListByAccount(ctx context.Context, accountID string) ([]Notification, error)
	MarkRead(ctx context.Context, notificationID, accountID string) error
}
