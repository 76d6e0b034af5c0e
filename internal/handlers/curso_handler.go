package handlers

import (
	mw "github.com/OriDaer/Portfolio/internal/middleware"
	"github.com/OriDaer/Portfolio/internal/models"
	"github.com/OriDaer/Portfolio/internal/pkg/validation"
	"github.com/OriDaer/Portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CursoHandler handles course CRUD form posts
type CursoHandler struct {
	portfolioService services.PortfolioService
	profileService   services.ProfileService
}

// NewCursoHandler creates a new CursoHandler
func NewCursoHandler(portfolioService services.PortfolioService, profileService services.ProfileService) *CursoHandler {
	return &CursoHandler{
		portfolioService: portfolioService,
		profileService:   profileService,
	}
}

// CursoRequest defines the form fields shared by create and update
type CursoRequest struct {
	Nombre           string `form:"nombre" validate:"required,max=200"`
	Institucion      string `form:"institucion" validate:"required,max=200"`
	Periodo          string `form:"periodo" validate:"max=150"`
	CertificacionURL string `form:"certificacion_url" validate:"omitempty,url,max=200"`
}

// Agregar handles POST /agregar_curso
func (h *CursoHandler) Agregar(c *fiber.Ctx) error {
	fileLogger := mw.GetRequestFileLogger(c)
	auditLogger := mw.GetRequestAuditLogger(c)

	var req CursoRequest
	if !validation.ParseAndValidate(c, &req) {
		fileLogger.Warn("Curso form validation failed")
		return nil
	}

	usuario, err := ownerFromSession(c, h.profileService)
	if err != nil {
		return respondServiceError(c, err, "create curso")
	}

	curso := &models.Curso{
		UsuarioID:        usuario.ID,
		Nombre:           req.Nombre,
		Institucion:      req.Institucion,
		Periodo:          req.Periodo,
		CertificacionURL: req.CertificacionURL,
	}
	if err := h.portfolioService.CreateCurso(c.Context(), curso); err != nil {
		return respondServiceError(c, err, "create curso")
	}

	auditLogger.Info("Curso created", zap.Int64("id", curso.ID), zap.String("nombre", curso.Nombre))
	return c.Redirect("/", fiber.StatusFound)
}

// Modificar handles POST /modificar_curso/:id
func (h *CursoHandler) Modificar(c *fiber.Ctx) error {
	fileLogger := mw.GetRequestFileLogger(c)
	auditLogger := mw.GetRequestAuditLogger(c)

	id, ok := parseIDParam(c)
	if !ok {
		return nil
	}

	var req CursoRequest
	if !validation.ParseAndValidate(c, &req) {
		fileLogger.Warn("Curso form validation failed", zap.Int64("id", id))
		return nil
	}

	usuario, err := ownerFromSession(c, h.profileService)
	if err != nil {
		return respondServiceError(c, err, "update curso")
	}

	curso := &models.Curso{
		UsuarioID:        usuario.ID,
		Nombre:           req.Nombre,
		Institucion:      req.Institucion,
		Periodo:          req.Periodo,
		CertificacionURL: req.CertificacionURL,
	}
	curso.ID = id
	if err := h.portfolioService.UpdateCurso(c.Context(), curso); err != nil {
		return respondServiceError(c, err, "update curso")
	}

	auditLogger.Info("Curso updated", zap.Int64("id", id))
	return c.Redirect("/", fiber.StatusFound)
}

// Eliminar handles POST /eliminar_curso/:id
func (h *CursoHandler) Eliminar(c *fiber.Ctx) error {
	auditLogger := mw.GetRequestAuditLogger(c)

	id, ok := parseIDParam(c)
	if !ok {
		return nil
	}

	if err := h.portfolioService.DeleteCurso(c.Context(), id); err != nil {
		return respondServiceError(c, err, "delete curso")
	}

	auditLogger.Info("Curso deleted", zap.Int64("id", id))
	return c.Redirect("/", fiber.StatusFound)
}
