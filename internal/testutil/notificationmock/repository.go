package notificationmock

import (
	"context"

	domain "trustlend-backend/internal/domain/notification"
)

// Repo is a function-backed mock that satisfies notification.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, n *domain.Notification) error
	ListByAccountFn func(ctx context.Context, accountID string) ([]domain.Notification, error)
	MarkReadFn      func(ctx context.Context, notificationID, accountID string) error
}

func (m *Repo) Create(ctx context.Context, n *domain.Notification) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, n)
	}
	return nil
}

func (m *Repo) ListByAccount(ctx context.Context, accountID string) ([]domain.Notification, error) {
	if m.ListByAccountFn != nil {
		return m.ListByAccountFn(ctx, accountID)
	}
	return nil, nil
}

func (m *Repo) MarkRead(ctx context.Context, notificationID, accountID string) error {
	if m.MarkReadFn != nil {
		return m.MarkReadFn(ctx, notificationID, accountID)
	}
	return nil
}
