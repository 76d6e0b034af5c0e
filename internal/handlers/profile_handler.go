package handlers

import (
	mw "github.com/OriDaer/Portfolio/internal/middleware"
	"github.com/OriDaer/Portfolio/internal/pkg/validation"
	"github.com/OriDaer/Portfolio/internal/services"
	"github.com/OriDaer/Portfolio/internal/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProfileHandler handles the owner dashboard: display name, profile image
// and the free-text about section.
type ProfileHandler struct {
	profileService services.ProfileService
	uploadDir      string
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService services.ProfileService, uploadDir string) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		uploadDir:      uploadDir,
	}
}

// ProfileEditRequest defines the dashboard form fields
type ProfileEditRequest struct {
	NombrePublico string `form:"nombre_publico" validate:"required,max=120"`
}

// AcercaRequest defines the about-section form
type AcercaRequest struct {
	Acerca string `form:"acerca" validate:"required"`
}

// Dashboard handles GET /dashboard requests
func (h *ProfileHandler) Dashboard(c *fiber.Ctx) error {
	usuario, err := ownerFromSession(c, h.profileService)
	if err != nil {
		return respondServiceError(c, err, "get profile")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"usuario":    usuario,
		"csrf_token": csrfToken(c),
	})
}

// UpdateDashboard handles POST /dashboard (multipart/form-data). The profile
// image is optional; when present it is stored as <username>.<ext> so a new
// upload always replaces the previous one.
func (h *ProfileHandler) UpdateDashboard(c *fiber.Ctx) error {
	fileLogger := mw.GetRequestFileLogger(c)
	auditLogger := mw.GetRequestAuditLogger(c)

	var req ProfileEditRequest
	if !validation.ParseAndValidate(c, &req) {
		fileLogger.Warn("Dashboard form validation failed")
		return nil
	}

	usuario, err := ownerFromSession(c, h.profileService)
	if err != nil {
		return respondServiceError(c, err, "update profile")
	}

	file, fileErr := optionalFormFile(c, "profile_image")
	if fileErr != nil {
		fileLogger.Error("Error retrieving uploaded profile image", zap.Error(fileErr))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Error processing image upload"})
	}

	// Extension check happens before any write hits the database.
	if file != nil {
		if err := storage.ValidateExtension(file.Filename, storage.ImageExtensions); err != nil {
			fileLogger.Warn("Profile image rejected", zap.String("filename", file.Filename), zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Solo imágenes (png, jpg, jpeg, gif)",
			})
		}
	}

	if err := h.profileService.UpdateProfile(c.Context(), usuario.Username, req.NombrePublico); err != nil {
		return respondServiceError(c, err, "update profile")
	}

	if file != nil {
		name := storage.ProfileImageName(usuario.Username, file.Filename)
		if _, err := storage.SaveUpload(c, file, h.uploadDir, name); err != nil {
			fileLogger.Error("Failed to save profile image", zap.String("filename", file.Filename), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not save image"})
		}
		if err := h.profileService.SetProfileImage(c.Context(), usuario.Username, name); err != nil {
			return respondServiceError(c, err, "update profile image")
		}
		auditLogger.Info("Profile image replaced",
			zap.String("username", usuario.Username),
			zap.String("old", usuario.ProfileImage),
			zap.String("new", name),
		)
	}

	auditLogger.Info("Profile updated", zap.String("username", usuario.Username))
	return c.Redirect("/dashboard", fiber.StatusFound)
}

// UpdateAcerca handles POST /editar-acerca requests
func (h *ProfileHandler) UpdateAcerca(c *fiber.Ctx) error {
	fileLogger := mw.GetRequestFileLogger(c)
	auditLogger := mw.GetRequestAuditLogger(c)

	var req AcercaRequest
	if !validation.ParseAndValidate(c, &req) {
		fileLogger.Warn("About form validation failed")
		return nil
	}

	usuario, err := ownerFromSession(c, h.profileService)
	if err != nil {
		return respondServiceError(c, err, "update about")
	}

	if err := h.profileService.UpdateAcercaDeMi(c.Context(), usuario.Username, req.Acerca); err != nil {
		return respondServiceError(c, err, "update about")
	}

	auditLogger.Info("About section updated", zap.String("username", usuario.Username))
	return c.Redirect("/", fiber.StatusFound)
}
