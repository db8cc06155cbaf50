package notification

import (
	"context"

	domain "trustlend-backend/internal/domain/notification"
	"trustlend-backend/internal/domain/uow"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// List returns an account's notifications, newest first.
func (u *Usecase) List(ctx context.Context, accountID string) ([]domain.Notification, error) {
	var out []domain.Notification
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		list, err := r.Notifications.ListByAccount(ctx, accountID)
		if err != nil {
			return err
		}
		out = list
		return nil
	})
	return out, err
}

// MarkRead flags one of the account's own notifications as read.
func (u *Usecase) MarkRead(ctx context.Context, accountID, notificationID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		return r.Notifications.MarkRead(ctx, notificationID, accountID)
	})
}
