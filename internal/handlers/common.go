// Package handlers maps HTTP routes onto the service layer. The site is a
// browser-form surface: successful mutations redirect, failures come back as
// JSON with field details.
package handlers

import (
	"errors"
	"mime/multipart"

	"github.com/OriDaer/Portfolio/internal/middleware"
	"github.com/OriDaer/Portfolio/internal/models"
	"github.com/OriDaer/Portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// ownerFromSession resolves the authenticated session username to the owner
// row. RequireSession runs first, so a missing user here means the account
// was removed underneath a live session.
func ownerFromSession(c *fiber.Ctx, profileService services.ProfileService) (*models.Usuario, error) {
	username := middleware.SessionUsername(c)
	if username == "" {
		return nil, services.ErrUserNotFound
	}
	return profileService.GetByUsername(c.Context(), username)
}

// optionalFormFile reads an optional upload field. fiber delegates to
// fasthttp, which reports both an absent field and a non-multipart body as
// errors; either means "no file sent", not a bad request.
func optionalFormFile(c *fiber.Ctx, field string) (*multipart.FileHeader, error) {
	file, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) || errors.Is(err, fasthttp.ErrNoMultipartForm) {
			return nil, nil
		}
		return nil, err
	}
	return file, nil
}

// parseIDParam reads the :id route parameter.
func parseIDParam(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id parameter",
		})
		return 0, false
	}
	return int64(id), true
}

// respondServiceError translates service failures into responses: not-found
// is a hard 404, a lost owner account invalidates the session, anything else
// is a 500 with the detail logged under the request id.
func respondServiceError(c *fiber.Ctx, err error, what string) error {
	logger := middleware.GetRequestFileLogger(c)
	switch {
	case errors.Is(err, services.ErrNotFound):
		logger.Warn("Target row not found", zap.String("operation", what), zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Record not found",
		})
	case errors.Is(err, services.ErrUserNotFound):
		logger.Error("Owner account missing for active session", zap.String("operation", what))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Session no longer valid",
		})
	default:
		logger.Error("Operation failed", zap.String("operation", what), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An unexpected error occurred",
		})
	}
}

// csrfToken returns the per-request token handed out on GET endpoints so the
// client can embed it in its next form post.
func csrfToken(c *fiber.Ctx) string {
	if token, ok := c.Locals(middleware.CSRFTokenContextKey).(string); ok {
		return token
	}
	return ""
}
