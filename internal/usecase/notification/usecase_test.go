package notification

import (
	"context"
	"errors"
	"testing"

	domain "trustlend-backend/internal/domain/notification"
	"trustlend-backend/internal/domain/uow"
	"trustlend-backend/internal/testutil/notificationmock"
	"trustlend-backend/internal/testutil/uowmock"
)

func TestListScopedToAccount(t *testing.T) {
	accountID := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	var askedFor string
	notifications := &notificationmock.Repo{
		ListByAccountFn: func(ctx context.Context, id string) ([]domain.Notification, error) {
			askedFor = id
			return []domain.Notification{{AccountID: id, Message: "contract signed"}}, nil
		},
	}
	uc := NewUsecase(uowmock.New(uow.Repos{Notifications: notifications}))

	got, err := uc.List(context.Background(), accountID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if askedFor != accountID || len(got) != 1 {
		t.Fatalf("unexpected listing for %q: %+v", askedFor, got)
	}
}

func TestMarkReadPassesOwner(t *testing.T) {
	accountID := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	notifID := "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	notifications := &notificationmock.Repo{
		MarkReadFn: func(ctx context.Context, nID, aID string) error {
			if nID != notifID || aID != accountID {
				t.Fatalf("MarkRead(%q, %q)", nID, aID)
			}
			return nil
		},
	}
	uc := NewUsecase(uowmock.New(uow.Repos{Notifications: notifications}))

	if err := uc.MarkRead(context.Background(), accountID, notifID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
}

func TestMarkReadSurfacesNotFound(t *testing.T) {
	notifications := &notificationmock.Repo{
		MarkReadFn: func(ctx context.Context, nID, aID string) error {
			return domain.ErrNotFound
		},
	}
	uc := NewUsecase(uowmock.New(uow.Repos{Notifications: notifications}))

	err := uc.MarkRead(context.Background(), "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
