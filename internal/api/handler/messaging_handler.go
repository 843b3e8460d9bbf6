package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/profinder/marketplace-api/internal/core/domain"
	"github.com/profinder/marketplace-api/internal/core/ports"
)

// MessagingHandler handles direct messages and notifications.
type MessagingHandler struct {
	messaging ports.MessagingService
}

func NewMessagingHandler(messaging ports.MessagingService) *MessagingHandler {
	return &MessagingHandler{messaging: messaging}
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required,uuid"`
	Content    string `json:"content"     validate:"required,max=2000"`
}

type notifyRequest struct {
	UserID  string `json:"user_id" validate:"required,uuid"`
	Message string `json:"message" validate:"required,max=1000"`
}

// Send handles POST /v1/messages. The sender is always the authenticated user.
//
// @Summary      Send a message
// @Tags         messaging
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendMessageRequest  true  "Receiver and content"
// @Success      201   {object}  domain.Message
// @Failure      404   {object}  errorResponse
// @Router       /v1/messages [post]
func (h *MessagingHandler) Send(c echo.Context) error {
	callerID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid receiver_id")
	}

	msg, err := h.messaging.Send(c.Request().Context(), callerID, receiverID, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, msg)
}

// Inbox handles GET /v1/messages: messages received by the caller, oldest first.
//
// @Summary      List received messages
// @Tags         messaging
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Message
// @Router       /v1/messages [get]
func (h *MessagingHandler) Inbox(c echo.Context) error {
	callerID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	messages, err := h.messaging.Inbox(c.Request().Context(), callerID)
	if err != nil {
		return err
	}
	if messages == nil {
		messages = []*domain.Message{}
	}
	return c.JSON(http.StatusOK, messages)
}

// Notify handles POST /v1/notifications.
//
// @Summary      Create a notification for a user
// @Tags         messaging
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      notifyRequest  true  "Addressee and message"
// @Success      201   {object}  domain.Notification
// @Failure      404   {object}  errorResponse
// @Router       /v1/notifications [post]
func (h *MessagingHandler) Notify(c echo.Context) error {
	var req notifyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}

	n, err := h.messaging.Notify(c.Request().Context(), userID, req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, n)
}

// Notifications handles GET /v1/notifications for the caller.
//
// @Summary      List the caller's notifications
// @Tags         messaging
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Notification
// @Router       /v1/notifications [get]
func (h *MessagingHandler) Notifications(c echo.Context) error {
	callerID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	notifications, err := h.messaging.Notifications(c.Request().Context(), callerID)
	if err != nil {
		return err
	}
	if notifications == nil {
		notifications = []*domain.Notification{}
	}
	return c.JSON(http.StatusOK, notifications)
}

// MarkRead handles PATCH /v1/notifications/:id/read.
//
// @Summary      Mark a notification as read
// @Tags         messaging
// @Security     BearerAuth
// @Param        id  path  string  true  "Notification id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/notifications/{id}/read [patch]
func (h *MessagingHandler) MarkRead(c echo.Context) error {
	callerID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.messaging.MarkRead(c.Request().Context(), callerID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
