package handlers

import (
	"net/http"

	"financas-api/internal/dto"
	"financas-api/internal/errors"
	"financas-api/internal/models"
	"financas-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles raw notification HTTP requests
type NotificationHandler struct {
	notificationService services.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService services.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// Ingest stores a forwarded push notification or manual entry
// @Summary Ingest notification
// @Description Store a forwarded banking push notification or a manual wallet entry
// @Tags Notifications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateNotificationRequest true "Notification payload"
// @Success 201 {object} dto.NotificationResponse "Notification stored"
// @Failure 400 {object} errors.ErrorResponse "NOTIFICATION_003 - Empty message or NOTIFICATION_004/005 - Invalid fields"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /notifications [post]
func (h *NotificationHandler) Ingest(c echo.Context) error {
	var req dto.CreateNotificationRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	notification, err := h.notificationService.Ingest(&req)
	if err != nil {
		switch err {
		case services.ErrEmptyMessage:
			return SendError(c, errors.NotificationEmptyMessage)
		case services.ErrNegativeAmount:
			return SendError(c, errors.NotificationInvalidAmount)
		case models.ErrInvalidDirection:
			return SendError(c, errors.NotificationInvalidDirection)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, toNotificationResponse(notification))
}

// List returns all stored notifications
// @Summary List notifications
// @Description Retrieve all stored notifications, most recent first
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ListNotificationsResponse "Stored notifications"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	notifications, err := h.notificationService.List()
	if err != nil {
		return SendSystemError(c, err)
	}

	response := dto.ListNotificationsResponse{
		Notifications: make([]dto.NotificationResponse, 0, len(notifications)),
		Total:         len(notifications),
	}
	for i := range notifications {
		response.Notifications = append(response.Notifications, toNotificationResponse(&notifications[i]))
	}

	return c.JSON(http.StatusOK, response)
}

// Get returns a single stored notification
// @Summary Get notification
// @Description Retrieve one stored notification by ID
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 200 {object} dto.NotificationResponse "Stored notification"
// @Failure 400 {object} errors.ErrorResponse "NOTIFICATION_002 - Invalid notification ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "NOTIFICATION_001 - Notification not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /notifications/{id} [get]
func (h *NotificationHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.NotificationInvalidID)
	}

	notification, err := h.notificationService.GetByID(id)
	if err != nil {
		if err == services.ErrNotificationNotFound {
			return SendError(c, errors.NotificationNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toNotificationResponse(notification))
}

// Update applies partial corrections to a stored notification
// @Summary Update notification
// @Description Correct the message, amount, direction, or category of a stored notification
// @Tags Notifications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Param request body dto.UpdateNotificationRequest true "Fields to update"
// @Success 200 {object} dto.NotificationResponse "Updated notification"
// @Failure 400 {object} errors.ErrorResponse "NOTIFICATION_002/003/004/005 or VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "NOTIFICATION_001 - Notification not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /notifications/{id} [put]
func (h *NotificationHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.NotificationInvalidID)
	}

	var req dto.UpdateNotificationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	notification, err := h.notificationService.Update(id, &req)
	if err != nil {
		switch err {
		case services.ErrNotificationNotFound:
			return SendError(c, errors.NotificationNotFound)
		case services.ErrEmptyMessage:
			return SendError(c, errors.NotificationEmptyMessage)
		case services.ErrNegativeAmount:
			return SendError(c, errors.NotificationInvalidAmount)
		case models.ErrInvalidDirection:
			return SendError(c, errors.NotificationInvalidDirection)
		case services.ErrNoUpdateFields:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("No fields to update"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toNotificationResponse(notification))
}

// Delete removes a stored notification
// @Summary Delete notification
// @Description Remove a stored notification from the ledger
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 204 "Notification deleted"
// @Failure 400 {object} errors.ErrorResponse "NOTIFICATION_002 - Invalid notification ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "NOTIFICATION_001 - Notification not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.NotificationInvalidID)
	}

	if err := h.notificationService.Delete(id); err != nil {
		if err == services.ErrNotificationNotFound {
			return SendError(c, errors.NotificationNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func toNotificationResponse(n *models.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:         n.ID.String(),
		Source:     n.Source,
		Message:    n.Message,
		Amount:     n.Amount.StringFixed(2),
		Direction:  n.Direction,
		Category:   n.Category,
		OccurredAt: n.OccurredAt,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}
