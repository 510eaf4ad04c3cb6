package service

import (
	"goldcredit/cmd/internal/contract"
	"goldcredit/cmd/internal/domain/entity"
	"goldcredit/cmd/internal/utils"
	"goldcredit/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type DefaultNotificationService struct {
	NotifRepo  NotificationRepository
	Reconciler *Reconciler
}

func NewNotificationService(notifRepo NotificationRepository, reconciler *Reconciler) *DefaultNotificationService {
	return &DefaultNotificationService{
		NotifRepo:  notifRepo,
		Reconciler: reconciler,
	}
}

func (s *DefaultNotificationService) GetUnread() ([]*contract.NotificationResponse, apierror.ErrorResponse) {
	notifications, err := s.NotifRepo.FindUnread()
	if err != nil {
		log.Errorf("failed to fetch unread notifications: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.NotificationResponse, len(notifications))
	for i, notification := range notifications {
		resp[i] = toNotificationResponse(notification)
	}
	return resp, nil
}

func (s *DefaultNotificationService) CountUnread() (*contract.UnreadCountResponse, apierror.ErrorResponse) {
	total, err := s.NotifRepo.CountUnread()
	if err != nil {
		log.Errorf("failed to count unread notifications: %v", err)
		return nil, apierror.InternalServerError
	}
	return &contract.UnreadCountResponse{Unread: total}, nil
}

func (s *DefaultNotificationService) MarkRead(id int64) apierror.ErrorResponse {
	marked, err := s.NotifRepo.MarkRead(id)
	if err != nil {
		log.Errorf("failed to mark notification %d as read: %v", id, err)
		return apierror.InternalServerError
	}

	if !marked {
		return apierror.NotFoundError
	}
	return nil
}

func (s *DefaultNotificationService) MarkAllRead() apierror.ErrorResponse {
	if err := s.NotifRepo.MarkAllRead(); err != nil {
		log.Errorf("failed to mark all notifications as read: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

// RunChecksNow triggers a reconciliation pass synchronously, for the
// "run checks" button. It can overlap with a scheduled cycle; the
// document pass dedups and the expiry pass accepts duplicates.
func (s *DefaultNotificationService) RunChecksNow() apierror.ErrorResponse {
	if err := s.Reconciler.RunChecks(); err != nil {
		return apierror.ChecksInProgressError
	}
	return nil
}

func toNotificationResponse(notification *entity.Notification) *contract.NotificationResponse {
	resp := &contract.NotificationResponse{
		ID:         notification.ID,
		CedenteID:  notification.CedenteID,
		Kind:       string(notification.Kind),
		Title:      notification.Title,
		Message:    notification.Message,
		IsRead:     notification.IsRead,
		ExpiryDate: notification.ExpiryDate,
		CreatedAt:  utils.FormatEpoch(notification.CreatedAt),
	}

	if notification.Cedente != nil {
		resp.CedenteName = notification.Cedente.Name
	}
	return resp
}
