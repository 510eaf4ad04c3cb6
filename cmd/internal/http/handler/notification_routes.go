package handler

import (
	"net/http"

	"goldcredit/cmd/internal/contract"
	"goldcredit/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type NotificationService interface {
	GetUnread() ([]*contract.NotificationResponse, apierror.ErrorResponse)
	CountUnread() (*contract.UnreadCountResponse, apierror.ErrorResponse)
	MarkRead(id int64) apierror.ErrorResponse
	MarkAllRead() apierror.ErrorResponse
	RunChecksNow() apierror.ErrorResponse
}

type DefaultNotificationRoute struct {
	NotificationService NotificationService
}

func NewNotificationDefault(notificationService NotificationService) *DefaultNotificationRoute {
	return &DefaultNotificationRoute{NotificationService: notificationService}
}

func (h *DefaultNotificationRoute) GetUnread(c echo.Context) error {
	notifications, apierr := h.NotificationService.GetUnread()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"notifications": notifications}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultNotificationRoute) CountUnread(c echo.Context) error {
	count, apierr := h.NotificationService.CountUnread()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, count)
}

func (h *DefaultNotificationRoute) MarkRead(c echo.Context) error {
	id, cerr := pathID(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	if apierr := h.NotificationService.MarkRead(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (h *DefaultNotificationRoute) MarkAllRead(c echo.Context) error {
	if apierr := h.NotificationService.MarkAllRead(); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (h *DefaultNotificationRoute) RunChecks(c echo.Context) error {
	if apierr := h.NotificationService.RunChecksNow(); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"message": "Checks executed"}
	return c.JSON(http.StatusOK, &resp)
}
