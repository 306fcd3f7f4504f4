package handlers

import (
	"net/http"
	"time"

	"financas-api/internal/repositories"
	"financas-api/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	notificationRepo repositories.NotificationRepositoryInterface
	generator        services.SampleGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(notificationRepo repositories.NotificationRepositoryInterface) *DevHandler {
	return &DevHandler{
		notificationRepo: notificationRepo,
		generator:        services.NewSampleGenerator(),
	}
}

// GenerateTestData seeds realistic banking push notifications
//
// Method: POST /api/v1/dev/generate-test-data
// Authentication: Required
// Environment: Development only
//
// Query parameters:
//   - count: Number of notifications to generate (default: 100, max: 1000)
//   - days: Number of days of history to generate (default: 30, max: 365)
//
// Success Response: 200 OK
//   - message: Success message
//   - notifications_created: Number of notifications created
//
// Error Responses:
//   - 401: Unauthorized
//   - 403: Forbidden (not a development environment)
//   - 500: Internal server error
func (h *DevHandler) GenerateTestData(c echo.Context) error {
	count := getIntQueryParam(c, "count", 100)
	if count < 1 {
		count = 1
	}
	if count > 1000 {
		count = 1000
	}

	days := getIntQueryParam(c, "days", 30)
	if days < 1 {
		days = 1
	}
	if days > 365 {
		days = 365
	}

	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	notifications := h.generator.GenerateNotifications(count, startDate, endDate)

	created := 0
	for _, notification := range notifications {
		if err := h.notificationRepo.Create(notification); err != nil {
			continue
		}
		created++
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":               "test data generated successfully",
		"notifications_created": created,
	})
}
