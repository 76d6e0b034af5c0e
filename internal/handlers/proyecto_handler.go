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

// ProyectoHandler handles project CRUD form posts. Proyecto rows are not
// scoped to the owner account; only the session gate applies.
type ProyectoHandler struct {
	portfolioService services.PortfolioService
	uploadDir        string
}

// NewProyectoHandler creates a new ProyectoHandler
func NewProyectoHandler(portfolioService services.PortfolioService, uploadDir string) *ProyectoHandler {
	return &ProyectoHandler{
		portfolioService: portfolioService,
		uploadDir:        uploadDir,
	}
}

// ProyectoRequest defines the form fields shared by create and update
type ProyectoRequest struct {
	Titulo      string `form:"titulo" validate:"required,max=150"`
	Descripcion string `form:"descripcion" validate:"max=300"`
	Fecha       string `form:"fecha" validate:"max=50"`
	GithubURL   string `form:"github_url" validate:"omitempty,url,max=200"`
}

// imagenFromForm extracts and validates the optional project image. The bool
// reports whether the caller may continue; on false a response was sent.
func (h *ProyectoHandler) imagenFromForm(c *fiber.Ctx) (string, bool) {
	fileLogger := mw.GetRequestFileLogger(c)

	file, err := optionalFormFile(c, "imagen")
	if err != nil {
		fileLogger.Error("Error retrieving uploaded image", zap.Error(err))
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Error processing image upload"})
		return "", false
	}
	if file == nil {
		return "", true
	}

	if err := storage.ValidateExtension(file.Filename, storage.ImageExtensions); err != nil {
		fileLogger.Warn("Image rejected", zap.String("filename", file.Filename), zap.Error(err))
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Solo imágenes (png, jpg, jpeg, gif)"})
		return "", false
	}

	name := storage.SanitizeFilename(file.Filename)
	if name == "" {
		fileLogger.Warn("Image filename unusable after sanitization", zap.String("filename", file.Filename))
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid image filename"})
		return "", false
	}

	if _, err := storage.SaveUpload(c, file, h.uploadDir, name); err != nil {
		fileLogger.Error("Failed to save image", zap.String("filename", name), zap.Error(err))
		c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not save image"})
		return "", false
	}
	return name, true
}

// Agregar handles POST /agregar_proyecto
func (h *ProyectoHandler) Agregar(c *fiber.Ctx) error {
	fileLogger := mw.GetRequestFileLogger(c)
	auditLogger := mw.GetRequestAuditLogger(c)

	var req ProyectoRequest
	if !validation.ParseAndValidate(c, &req) {
		fileLogger.Warn("Proyecto form validation failed")
		return nil
	}

	imagen, ok := h.imagenFromForm(c)
	if !ok {
		return nil
	}

	proyecto := &models.Proyecto{
		Titulo:      req.Titulo,
		Descripcion: req.Descripcion,
		Fecha:       req.Fecha,
		GithubURL:   req.GithubURL,
		Imagen:      imagen,
	}
	if err := h.portfolioService.CreateProyecto(c.Context(), proyecto); err != nil {
		return respondServiceError(c, err, "create proyecto")
	}

	auditLogger.Info("Proyecto created", zap.Int64("id", proyecto.ID), zap.String("titulo", proyecto.Titulo))
	return c.Redirect("/", fiber.StatusFound)
}

// Modificar handles POST /modificar_proyecto/:id. The stored image survives
// unless a replacement file is uploaded; the old file is never deleted.
func (h *ProyectoHandler) Modificar(c *fiber.Ctx) error {
	fileLogger := mw.GetRequestFileLogger(c)
	auditLogger := mw.GetRequestAuditLogger(c)

	id, ok := parseIDParam(c)
	if !ok {
		return nil
	}

	var req ProyectoRequest
	if !validation.ParseAndValidate(c, &req) {
		fileLogger.Warn("Proyecto form validation failed", zap.Int64("id", id))
		return nil
	}

	existing, err := h.portfolioService.GetProyecto(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err, "update proyecto")
	}

	imagen, ok := h.imagenFromForm(c)
	if !ok {
		return nil
	}
	if imagen == "" {
		imagen = existing.Imagen
	}

	proyecto := &models.Proyecto{
		Titulo:      req.Titulo,
		Descripcion: req.Descripcion,
		Fecha:       req.Fecha,
		GithubURL:   req.GithubURL,
		Imagen:      imagen,
	}
	proyecto.ID = id
	if err := h.portfolioService.UpdateProyecto(c.Context(), proyecto); err != nil {
		return respondServiceError(c, err, "update proyecto")
	}

	auditLogger.Info("Proyecto updated", zap.Int64("id", id))
	return c.Redirect("/", fiber.StatusFound)
}

// Eliminar handles POST /eliminar_proyecto/:id
func (h *ProyectoHandler) Eliminar(c *fiber.Ctx) error {
	auditLogger := mw.GetRequestAuditLogger(c)

	id, ok := parseIDParam(c)
	if !ok {
		return nil
	}

	if err := h.portfolioService.DeleteProyecto(c.Context(), id); err != nil {
		return respondServiceError(c, err, "delete proyecto")
	}

	auditLogger.Info("Proyecto deleted", zap.Int64("id", id))
	return c.Redirect("/", fiber.StatusFound)
}
