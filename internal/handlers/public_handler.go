package handlers

import (
	"os"
	"path/filepath"

	mw "github.com/OriDaer/Portfolio/internal/middleware"
	"github.com/OriDaer/Portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PublicHandler serves the unauthenticated surface: the landing aggregate
// and the CV download.
type PublicHandler struct {
	portfolioService services.PortfolioService
	ownerUsername    string
	uploadDir        string
	cvFileName       string
}

// NewPublicHandler creates a new PublicHandler
func NewPublicHandler(portfolioService services.PortfolioService, ownerUsername, uploadDir, cvFileName string) *PublicHandler {
	return &PublicHandler{
		portfolioService: portfolioService,
		ownerUsername:    ownerUsername,
		uploadDir:        uploadDir,
		cvFileName:       cvFileName,
	}
}

// Index handles GET /: the owner profile together with every content list.
func (h *PublicHandler) Index(c *fiber.Ctx) error {
	fileLogger := mw.GetRequestFileLogger(c)

	page, err := h.portfolioService.LandingPage(c.Context(), h.ownerUsername)
	if err != nil {
		fileLogger.Error("Failed to build landing page", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An unexpected error occurred",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"usuario":      page.Usuario,
		"experiencias": page.Experiencias,
		"educacion":    page.Educacion,
		"cursos":       page.Cursos,
		"proyectos":    page.Proyectos,
		"csrf_token":   csrfToken(c),
	})
}

// DescargarCV handles GET /descargar-cv, serving the configured PDF as an
// attachment.
func (h *PublicHandler) DescargarCV(c *fiber.Ctx) error {
	fileLogger := mw.GetRequestFileLogger(c)

	path := filepath.Join(h.uploadDir, h.cvFileName)
	if _, err := os.Stat(path); err != nil {
		fileLogger.Warn("CV file not found", zap.String("path", path), zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "CV not available",
		})
	}
	return c.Download(path, h.cvFileName)
}
