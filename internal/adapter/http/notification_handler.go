package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trustlend-backend/internal/usecase/notification"
)

type NotificationHandler struct{ uc *notification.Usecase }

func NewNotificationHandler(uc *notification.Usecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) List(c echo.Context) error {
	actor, ok := requireActor(c)
	if !ok {
		return errUnauthenticated(c)
	}
	list, err := h.uc.List(c.Request().Context(), actor)
	if err != nil {
		return domainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"notifications": list})
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	actor, ok := requireActor(c)
	if !ok {
		return errUnauthenticated(c)
	}
	notificationID := c.Param("notification_id")
	if !validID(notificationID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid notification_id"})
	}
	if err := h.uc.MarkRead(c.Request().Context(), actor, notificationID); err != nil {
		return domainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "read"})
}
