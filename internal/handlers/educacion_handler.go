package handlers

import (
	mw "github.com/OriDaer/Portfolio/internal/middleware"
	"github.com/OriDaer/Portfolio/internal/models"
	"github.com/OriDaer/Portfolio/internal/pkg/validation"
	"github.com/OriDaer/Portfolio/internal/services"
	"github.com/OriDaer/Portfolio/internal/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EducacionHandler handles education CRUD form posts, including the optional
// institution logo upload.
type EducacionHandler struct {
	portfolioService services.PortfolioService
	profileService   services.ProfileService
	uploadDir        string
}

// NewEducacionHandler creates a new EducacionHandler
func NewEducacionHandler(portfolioService services.PortfolioService, profileService services.ProfileService, uploadDir string) *EducacionHandler {
	return &EducacionHandler{
		portfolioService: portfolioService,
		profileService:   profileService,
		uploadDir:        uploadDir,
	}
}

// EducacionRequest defines the form fields shared by create and update
type EducacionRequest struct {
	Titulo      string `form:"titulo" validate:"required,max=200"`
	Institucion string `form:"institucion" validate:"required,max=200"`
	Periodo     string `form:"periodo" validate:"max=150"`
	Estado      string `form:"estado" validate:"max=100"`
}

// logoFromForm extracts and validates the optional logo upload. The bool
// reports whether the caller may continue; on false a response was sent.
func (h *EducacionHandler) logoFromForm(c *fiber.Ctx) (string, bool) {
	fileLogger := mw.GetRequestFileLogger(c)

	file, err := optionalFormFile(c, "logo")
	if err != nil {
		fileLogger.Error("Error retrieving uploaded logo", zap.Error(err))
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Error processing logo upload"})
		return "", false
	}
	if file == nil {
		return "", true
	}

	if err := storage.ValidateExtension(file.Filename, storage.ImageExtensions); err != nil {
		fileLogger.Warn("Logo rejected", zap.String("filename", file.Filename), zap.Error(err))
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Solo imágenes (png, jpg, jpeg, gif)"})
		return "", false
	}

	name := storage.SanitizeFilename(file.Filename)
	if name == "" {
		fileLogger.Warn("Logo filename unusable after sanitization", zap.String("filename", file.Filename))
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid logo filename"})
		return "", false
	}

	if _, err := storage.SaveUpload(c, file, h.uploadDir, name); err != nil {
		fileLogger.Error("Failed to save logo", zap.String("filename", name), zap.Error(err))
		c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not save logo"})
		return "", false
	}
	return name, true
}

// Agregar handles POST /agregar_educacion
func (h *EducacionHandler) Agregar(c *fiber.Ctx) error {
	fileLogger := mw.GetRequestFileLogger(c)
	auditLogger := mw.GetRequestAuditLogger(c)

	var req EducacionRequest
	if !validation.ParseAndValidate(c, &req) {
		fileLogger.Warn("Educacion form validation failed")
		return nil
	}

	usuario, err := ownerFromSession(c, h.profileService)
	if err != nil {
		return respondServiceError(c, err, "create educacion")
	}

	logo, ok := h.logoFromForm(c)
	if !ok {
		return nil
	}

	edu := &models.Educacion{
		UsuarioID:   usuario.ID,
		Titulo:      req.Titulo,
		Institucion: req.Institucion,
		Periodo:     req.Periodo,
		Estado:      req.Estado,
		Logo:        logo,
	}
	if err := h.portfolioService.CreateEducacion(c.Context(), edu); err != nil {
		return respondServiceError(c, err, "create educacion")
	}

	auditLogger.Info("Educacion created", zap.Int64("id", edu.ID), zap.String("titulo", edu.Titulo))
	return c.Redirect("/", fiber.StatusFound)
}

// Modificar handles POST /modificar_educacion/:id. The stored logo survives
// unless a replacement file is uploaded; the old file is never deleted.
func (h *EducacionHandler) Modificar(c *fiber.Ctx) error {
	fileLogger := mw.GetRequestFileLogger(c)
	auditLogger := mw.GetRequestAuditLogger(c)

	id, ok := parseIDParam(c)
	if !ok {
		return nil
	}

	var req EducacionRequest
	if !validation.ParseAndValidate(c, &req) {
		fileLogger.Warn("Educacion form validation failed", zap.Int64("id", id))
		return nil
	}

	existing, err := h.portfolioService.GetEducacion(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err, "update educacion")
	}

	logo, ok := h.logoFromForm(c)
	if !ok {
		return nil
	}
	if logo == "" {
		logo = existing.Logo
	}

	edu := &models.Educacion{
		UsuarioID:   existing.UsuarioID,
		Titulo:      req.Titulo,
		Institucion: req.Institucion,
		Periodo:     req.Periodo,
		Estado:      req.Estado,
		Logo:        logo,
	}
	edu.ID = id
	if err := h.portfolioService.UpdateEducacion(c.Context(), edu); err != nil {
		return respondServiceError(c, err, "update educacion")
	}

	auditLogger.Info("Educacion updated", zap.Int64("id", id))
	return c.Redirect("/", fiber.StatusFound)
}

// Eliminar handles POST /eliminar_educacion/:id
func (h *EducacionHandler) Eliminar(c *fiber.Ctx) error {
	auditLogger := mw.GetRequestAuditLogger(c)

	id, ok := parseIDParam(c)
	if !ok {
		return nil
	}

	if err := h.portfolioService.DeleteEducacion(c.Context(), id); err != nil {
		return respondServiceError(c, err, "delete educacion")
	}

	auditLogger.Info("Educacion deleted", zap.Int64("id", id))
	return c.Redirect("/", fiber.StatusFound)
}
