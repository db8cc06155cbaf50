package mysql

import (
	"context"

	"gorm.io/gorm"

	notificationDomain "trustlend-backend/internal/domain/notification"
)

type NotificationRepository struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notificationDomain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) ListByAccount(ctx context.Context, accountID string) ([]notificationDomain.Notification, error) {
	var out []notificationDomain.Notification
	res := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("id DESC").
		Find(&out)
	return out, res.Error
}

func (r *NotificationRepository) MarkRead(ctx context.Context, notificationID, accountID string) error {
	res := r.db.WithContext(ctx).
		Model(&notificationDomain.Notification{}).
		Where("notification_id = ? AND account_id = ?", notificationID, accountID).
		Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notificationDomain.ErrNotFound
	}
	return nil
}
