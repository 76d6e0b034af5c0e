package bootstrap

import (
	"context"
	"database/sql"

	"github.com/OriDaer/Portfolio/internal/config"
	"github.com/OriDaer/Portfolio/internal/handlers"
	"github.com/OriDaer/Portfolio/internal/logging"
	"github.com/OriDaer/Portfolio/internal/models"
	"github.com/OriDaer/Portfolio/internal/repositories"
	"github.com/OriDaer/Portfolio/internal/services"
	"github.com/OriDaer/Portfolio/internal/utils"

	"go.uber.org/zap"
)

// Seed account credentials for the very first boot. The password is changed
// through the dashboard afterwards; re-seeding never touches an existing row.
const (
	SeedUsername      = "daer"
	SeedPassword      = "123456"
	SeedNombrePublico = "Daer Oriana Berenice"
	SeedProfileImage  = "daer.png"
	SeedAcercaDeMi    = "¡Hola! Soy desarrolladora web con enfoque en front-end."
)

// AppComponents holds the initialized components like handlers, repositories
// and the audit retention sweeper.
type AppComponents struct {
	AuthHandler        *handlers.AuthHandler
	ProfileHandler     *handlers.ProfileHandler
	ExperienciaHandler *handlers.ExperienciaHandler
	EducacionHandler   *handlers.EducacionHandler
	CursoHandler       *handlers.CursoHandler
	ProyectoHandler    *handlers.ProyectoHandler
	PublicHandler      *handlers.PublicHandler
	AuditHandler       *handlers.AuditHandler
	RetentionSweeper   *logging.RetentionSweeper
	AuditRepo          repositories.AuditRepository
	UserRepo           repositories.UserRepository
}

// InitializeAppComponents creates and wires up the application's core
// components: repositories, services, handlers and processors.
func InitializeAppComponents(
	cfg *config.Config,
	fileLogger *zap.Logger,
	auditRepo repositories.AuditRepository,
	db *sql.DB,
) (*AppComponents, error) {

	fileLogger.Info("Initializing application components: Repositories, Services, Handlers, Processors...")

	// --- 1. Initialize Repositories ---
	userRepo := repositories.NewUserRepository(db, fileLogger)
	experienciaRepo := repositories.NewExperienciaRepository(db, fileLogger)
	educacionRepo := repositories.NewEducacionRepository(db, fileLogger)
	cursoRepo := repositories.NewCursoRepository(db, fileLogger)
	proyectoRepo := repositories.NewProyectoRepository(db, fileLogger)
	fileLogger.Info("Repositories initialized.")

	// --- 2. Initialize Services ---
	authService := services.NewAuthService(userRepo, fileLogger, cfg.SecretKey)
	profileService := services.NewProfileService(userRepo, fileLogger)
	portfolioService := services.NewPortfolioService(userRepo, experienciaRepo, educacionRepo, cursoRepo, proyectoRepo, fileLogger)
	fileLogger.Info("Services initialized.")

	// --- 3. Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService, cfg.UploadDir)
	experienciaHandler := handlers.NewExperienciaHandler(portfolioService, profileService)
	educacionHandler := handlers.NewEducacionHandler(portfolioService, profileService, cfg.UploadDir)
	cursoHandler := handlers.NewCursoHandler(portfolioService, profileService)
	proyectoHandler := handlers.NewProyectoHandler(portfolioService, cfg.UploadDir)
	publicHandler := handlers.NewPublicHandler(portfolioService, SeedUsername, cfg.UploadDir, cfg.CVFileName)
	auditHandler := handlers.NewAuditHandler(auditRepo)
	fileLogger.Info("Handlers initialized.")

	// --- 4. Initialize Processors ---
	retentionSweeper := logging.NewRetentionSweeper(cfg, auditRepo, fileLogger)
	fileLogger.Info("Processors initialized.")

	fileLogger.Info("Application components initialization complete.")

	return &AppComponents{
		AuthHandler:        authHandler,
		ProfileHandler:     profileHandler,
		ExperienciaHandler: experienciaHandler,
		EducacionHandler:   educacionHandler,
		CursoHandler:       cursoHandler,
		ProyectoHandler:    proyectoHandler,
		PublicHandler:      publicHandler,
		AuditHandler:       auditHandler,
		RetentionSweeper:   retentionSweeper,
		AuditRepo:          auditRepo,
		UserRepo:           userRepo,
	}, nil
}

// SeedOwner creates the single owner account on first boot. It is idempotent:
// when a row with the seed username already exists — whatever its password —
// nothing is written.
func SeedOwner(ctx context.Context, userRepo repositories.UserRepository, logger *zap.Logger) error {
	existing, err := userRepo.FindByUsername(ctx, SeedUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		logger.Debug("Owner account already exists, seed skipped", zap.String("username", SeedUsername))
		return nil
	}

	hashed, err := utils.HashPassword(SeedPassword)
	if err != nil {
		return err
	}

	owner := &models.Usuario{
		Username:      SeedUsername,
		PasswordHash:  hashed,
		NombrePublico: SeedNombrePublico,
		ProfileImage:  SeedProfileImage,
		AcercaDeMi:    SeedAcercaDeMi,
	}
	if _, err := userRepo.CreateUser(ctx, owner); err != nil {
		return err
	}
	logger.Info("Seed owner account created", zap.String("username", SeedUsername))
	return nil
}
