package handlers

import (
	mw "github.com/OriDaer/Portfolio/internal/middleware"
	"github.com/OriDaer/Portfolio/internal/models"
	"github.com/OriDaer/Portfolio/internal/pkg/validation"
	"github.com/OriDaer/Portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ExperienciaHandler handles work-experience CRUD form posts
type ExperienciaHandler struct {
	portfolioService services.PortfolioService
	profileService   services.ProfileService
}

// NewExperienciaHandler creates a new ExperienciaHandler
func NewExperienciaHandler(portfolioService services.PortfolioService, profileService services.ProfileService) *ExperienciaHandler {
	return &ExperienciaHandler{
		portfolioService: portfolioService,
		profileService:   profileService,
	}
}

// ExperienciaRequest defines the form fields shared by create and update.
// Field limits follow the column sizes.
type ExperienciaRequest struct {
	Proyecto    string `form:"proyecto" validate:"required,max=200"`
	Descripcion string `form:"descripcion" validate:"required"`
	Puesto      string `form:"puesto" validate:"required,max=200"`
	Periodo     string `form:"periodo" validate:"required,max=120"`
	Logros      string `form:"logros" validate:"required"`
}

// Agregar handles POST /agregar_experiencia
func (h *ExperienciaHandler) Agregar(c *fiber.Ctx) error {
	fileLogger := mw.GetRequestFileLogger(c)
	auditLogger := mw.GetRequestAuditLogger(c)

	var req ExperienciaRequest
	if !validation.ParseAndValidate(c, &req) {
		fileLogger.Warn("Experiencia form validation failed")
		return nil
	}

	usuario, err := ownerFromSession(c, h.profileService)
	if err != nil {
		return respondServiceError(c, err, "create experiencia")
	}

	exp := &models.Experiencia{
		UsuarioID:   usuario.ID,
		Proyecto:    req.Proyecto,
		Descripcion: req.Descripcion,
		Puesto:      req.Puesto,
		Periodo:     req.Periodo,
		Logros:      req.Logros,
	}
	if err := h.portfolioService.CreateExperiencia(c.Context(), exp); err != nil {
		return respondServiceError(c, err, "create experiencia")
	}

	auditLogger.Info("Experiencia created", zap.Int64("id", exp.ID), zap.String("proyecto", exp.Proyecto))
	return c.Redirect("/", fiber.StatusFound)
}

// Modificar handles POST /modificar_experiencia/:id. Every field is
// overwritten; there is no partial-update path.
func (h *ExperienciaHandler) Modificar(c *fiber.Ctx) error {
	fileLogger := mw.GetRequestFileLogger(c)
	auditLogger := mw.GetRequestAuditLogger(c)

	id, ok := parseIDParam(c)
	if !ok {
		return nil
	}

	var req ExperienciaRequest
	if !validation.ParseAndValidate(c, &req) {
		fileLogger.Warn("Experiencia form validation failed", zap.Int64("id", id))
		return nil
	}

	usuario, err := ownerFromSession(c, h.profileService)
	if err != nil {
		return respondServiceError(c, err, "update experiencia")
	}

	exp := &models.Experiencia{
		UsuarioID:   usuario.ID,
		Proyecto:    req.Proyecto,
		Descripcion: req.Descripcion,
		Puesto:      req.Puesto,
		Periodo:     req.Periodo,
		Logros:      req.Logros,
	}
	exp.ID = id
	if err := h.portfolioService.UpdateExperiencia(c.Context(), exp); err != nil {
		return respondServiceError(c, err, "update experiencia")
	}

	auditLogger.Info("Experiencia updated", zap.Int64("id", id))
	return c.Redirect("/", fiber.StatusFound)
}

// Eliminar handles POST /eliminar_experiencia/:id
func (h *ExperienciaHandler) Eliminar(c *fiber.Ctx) error {
	auditLogger := mw.GetRequestAuditLogger(c)

	id, ok := parseIDParam(c)
	if !ok {
		return nil
	}

	if err := h.portfolioService.DeleteExperiencia(c.Context(), id); err != nil {
		return respondServiceError(c, err, "delete experiencia")
	}

	auditLogger.Info("Experiencia deleted", zap.Int64("id", id))
	return c.Redirect("/", fiber.StatusFound)
}
