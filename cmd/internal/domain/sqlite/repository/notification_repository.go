package repository

import (
	"goldcredit/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultNotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *DefaultNotificationRepository {
	return &DefaultNotificationRepository{db: db}
}

func (r *DefaultNotificationRepository) Create(notification *entity.Notification) error {
	return r.db.Create(notification).Error
}

// FindUnread returns unread notifications, newest first, with the
// owning cedente preloaded so responses can show its name.
func (r *DefaultNotificationRepository) FindUnread() ([]*entity.Notification, error) {
	var notifications []*entity.Notification
	err := r.db.
		Preload("Cedente").
		Where("is_read = ?", false).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *DefaultNotificationRepository) CountUnread() (int64, error) {
	var total int64
	err := r.db.Model(&entity.Notification{}).
		Where("is_read = ?", false).
		Count(&total).Error
	return total, err
}

// MarkRead returns false when the notification does not exist or is
// already read.
func (r *DefaultNotificationRepository) MarkRead(id int64) (bool, error) {
	result := r.db.Model(&entity.Notification{}).
		Where("id = ? AND is_read = ?", id, false).
		Update("is_read", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *DefaultNotificationRepository) MarkAllRead() error {
	return r.db.Model(&entity.Notification{}).
		Where("is_read = ?", false).
		Update("is_read", true).Error
}

// DeleteReadBefore removes read notifications created before the given
// epoch-millis cutoff and reports how many went away.
func (r *DefaultNotificationRepository) DeleteReadBefore(cutoff int64) (int64, error) {
	result := r.db.
		Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&entity.Notification{})
	return result.RowsAffected, result.Error
}
