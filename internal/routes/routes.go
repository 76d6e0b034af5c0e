package routes

import (
	"database/sql"
	"time"

	"github.com/OriDaer/Portfolio/internal/bootstrap"
	"github.com/OriDaer/Portfolio/internal/config"
	"github.com/OriDaer/Portfolio/internal/logging"
	mw "github.com/OriDaer/Portfolio/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SetupRoutes configures the application routes.
func SetupRoutes(
	app *fiber.App,
	cfg *config.Config,
	logger *zap.Logger,
	components *bootstrap.AppComponents,
	db *sql.DB, // For the health check ping
) {
	logger.Info("Setting up application routes...")

	// --- Public Routes ---

	// Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		lg := logging.GetFileLogger()
		healthStatus := fiber.Map{"status": "healthy", "timestamp": time.Now().UTC()}
		dbStatus := fiber.Map{}

		if db != nil {
			if err := db.PingContext(c.Context()); err == nil {
				dbStatus["sqlite"] = "connected"
			} else {
				dbStatus["sqlite"] = "disconnected"
				lg.Warn("Health check: SQLite ping failed", zap.Error(err))
			}
		} else {
			dbStatus["sqlite"] = "uninitialized"
		}
		healthStatus["dependencies"] = dbStatus
		return c.Status(fiber.StatusOK).JSON(healthStatus)
	})

	// Static File Server for Uploads
	if cfg.UploadDir != "" {
		app.Static("/uploads", cfg.UploadDir, fiber.Static{
			Compress:  true,
			ByteRange: true,
			Browse:    false,
		})
		logger.Info("Serving static files", zap.String("path", "/uploads"), zap.String("directory", cfg.UploadDir))
	} else {
		logger.Warn("Upload directory not configured, skipping static file route setup.")
	}

	// Landing page and CV download
	app.Get("/", components.PublicHandler.Index)
	app.Get("/descargar-cv", components.PublicHandler.DescargarCV)

	// Login/Logout
	app.Get("/login", components.AuthHandler.LoginPage)
	app.Post("/login", components.AuthHandler.Login)
	app.Get("/logout", components.AuthHandler.Logout)

	// --- Protected Routes (Requires Session Cookie) ---
	protected := app.Group("/", mw.RequireSession(cfg.SecretKey))

	// Dashboard / profile
	protected.Get("/dashboard", components.ProfileHandler.Dashboard)
	protected.Post("/dashboard", components.ProfileHandler.UpdateDashboard)
	protected.Post("/editar-acerca", components.ProfileHandler.UpdateAcerca)

	// Audit trail
	protected.Get("/auditoria", components.AuditHandler.Entries)

	// Experiencia
	protected.Post("/agregar_experiencia", components.ExperienciaHandler.Agregar)
	protected.Post("/modificar_experiencia/:id", components.ExperienciaHandler.Modificar)
	protected.Post("/eliminar_experiencia/:id", components.ExperienciaHandler.Eliminar)

	// Educacion
	protected.Post("/agregar_educacion", components.EducacionHandler.Agregar)
	protected.Post("/modificar_educacion/:id", components.EducacionHandler.Modificar)
	protected.Post("/eliminar_educacion/:id", components.EducacionHandler.Eliminar)

	// Curso
	protected.Post("/agregar_curso", components.CursoHandler.Agregar)
	protected.Post("/modificar_curso/:id", components.CursoHandler.Modificar)
	protected.Post("/eliminar_curso/:id", components.CursoHandler.Eliminar)

	// Proyecto
	protected.Post("/agregar_proyecto", components.ProyectoHandler.Agregar)
	protected.Post("/modificar_proyecto/:id", components.ProyectoHandler.Modificar)
	protected.Post("/eliminar_proyecto/:id", components.ProyectoHandler.Eliminar)

	logger.Info("Application routes configured.")
}
