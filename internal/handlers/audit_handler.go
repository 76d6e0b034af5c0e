package handlers

import (
	mw "github.com/OriDaer/Portfolio/internal/middleware"
	"github.com/OriDaer/Portfolio/internal/repositories"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuditHandler exposes the persisted audit trail to the owner.
type AuditHandler struct {
	auditRepo repositories.AuditRepository
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditRepo repositories.AuditRepository) *AuditHandler {
	return &AuditHandler{auditRepo: auditRepo}
}

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

// Entries handles GET /auditoria: the most recent audit rows, newest first.
func (h *AuditHandler) Entries(c *fiber.Ctx) error {
	fileLogger := mw.GetRequestFileLogger(c)

	limit := c.QueryInt("limit", defaultAuditLimit)
	if limit <= 0 || limit > maxAuditLimit {
		limit = defaultAuditLimit
	}

	entries, err := h.auditRepo.ListRecent(c.Context(), limit)
	if err != nil {
		fileLogger.Error("Failed to list audit entries", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An unexpected error occurred",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"entries":    entries,
		"csrf_token": csrfToken(c),
	})
}
