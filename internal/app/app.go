package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/OriDaer/Portfolio/internal/bootstrap"
	"github.com/OriDaer/Portfolio/internal/config"
	"github.com/OriDaer/Portfolio/internal/database"
	"github.com/OriDaer/Portfolio/internal/logging"
	"github.com/OriDaer/Portfolio/internal/middleware"
	"github.com/OriDaer/Portfolio/internal/repositories"
	routes "github.com/OriDaer/Portfolio/internal/routes"
	"github.com/OriDaer/Portfolio/internal/utils"

	"github.com/DeRuina/timberjack"
	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Run initializes and starts the application
func Run() {
	var fileLogger *zap.Logger
	var auditLogger *zap.Logger
	var db *sql.DB
	var cfg *config.Config
	var err error
	var appFiber *fiber.App
	var components *bootstrap.AppComponents
	var fileSyncer zapcore.WriteSyncer
	var auditRepo repositories.AuditRepository

	initAppStartTime := time.Now()

	// --- 1. Load Configuration ---
	tempConfigLogger, _ := zap.NewProduction(zap.ErrorOutput(zapcore.Lock(os.Stderr)))
	defer tempConfigLogger.Sync()

	cfg, err = config.LoadConfig(tempConfigLogger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- 2. Create SHARED File Writer/Syncer for timberjack ---
	logDir := filepath.Dir(cfg.LogFilePath)
	if logDir != "." && logDir != "/" {
		if err := os.MkdirAll(logDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "FATAL: Failed to ensure log directory %s exists: %v\n", logDir, err)
			os.Exit(1)
		}
	}
	timberJackLogger := &timberjack.Logger{
		Filename:         cfg.LogFilePath,
		MaxSize:          cfg.LogMaxSize,
		MaxBackups:       cfg.LogMaxBackups,
		MaxAge:           cfg.LogMaxAge,
		Compress:         cfg.LogCompress,
		LocalTime:        true,
		RotationInterval: time.Duration(cfg.LogRotateInterval) * time.Hour,
	}
	fileSyncer = zapcore.AddSync(timberJackLogger)
	fmt.Fprintf(os.Stderr, "[INFO] Shared file syncer created for path: %s with MaxSize: %d MB, RotateInterval: %d hours\n", cfg.LogFilePath, cfg.LogMaxSize, cfg.LogRotateInterval)

	// --- 3. Initialize SQLite Database ---
	// The database comes up before the loggers so the audit repository has a
	// live handle from the start.
	db, err = database.InitSQLite(cfg, tempConfigLogger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to initialize SQLite database: %v\n", err)
		os.Exit(1)
	}
	tempConfigLogger.Info("SQLite database initialized successfully.")

	// --- 4. Initialize Audit Repository and Main Application Loggers ---
	auditRepo = repositories.NewAuditRepository(db, tempConfigLogger)
	appLoggers, err := logging.InitializeLoggers(cfg, auditRepo, fileSyncer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to initialize application loggers: %v\n", err)
		os.Exit(1)
	}
	fileLogger = appLoggers.File
	auditLogger = appLoggers.Audit

	// --- 5. Set Global Loggers ---
	logging.SetGlobalLoggers(fileLogger, auditLogger)
	fileLogger.Info("Global application loggers (file/console and audit) have been set.")

	// --- 6. Trace Config Details (using the final fileLogger) ---
	utils.TraceConfigDetails(fileLogger, cfg)

	// --- 7. Initialize Remaining Application Components (Bootstrap) ---
	components, err = bootstrap.InitializeAppComponents(cfg, fileLogger, auditRepo, db)
	if err != nil {
		fileLogger.Fatal("Failed to initialize application components", zap.Error(err))
	}

	// --- 8. Seed Owner Account ---
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := bootstrap.SeedOwner(seedCtx, components.UserRepo, fileLogger); err != nil {
		cancelSeed()
		fileLogger.Fatal("Failed to seed owner account", zap.Error(err))
	}
	cancelSeed()

	// --- 9. Initialize Fiber App ---
	fileLogger.Info("Initializing Fiber application...")
	appFiber = fiber.New(fiber.Config{
		AppName:   "Portfolio",
		BodyLimit: cfg.MaxUploadBytes,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			lg := middleware.GetRequestFileLogger(c)
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) && e != nil {
				code = e.Code
			}
			if c == nil {
				fmt.Println("FATAL: fiber.Ctx is nil in ErrorHandler")
				return errors.New("internal context error")
			}
			fields := []zap.Field{
				zap.Int("status", code),
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
				zap.String("ip", c.IP()),
				zap.Error(err),
			}
			if reqIDStr, ok := c.Locals(middleware.RequestIDKey).(string); ok && reqIDStr != "" {
				fields = append(fields, zap.String("request_id", reqIDStr))
			}
			if code == fiber.StatusNotFound {
				lg.Warn("Resource not found", fields...)
			} else {
				lg.Error("Generic ErrorHandler", fields...)
			}
			resp := fiber.Map{"error": "An unexpected error occurred"}
			if cfg != nil && cfg.AppEnv != "production" {
				if err != nil {
					resp["detail"] = err.Error()
				} else {
					resp["detail"] = "Error object was nil"
				}
			}
			return c.Status(code).JSON(resp)
		},
	})

	// --- 10. Register Middleware ---
	appFiber.Use(recover.New(recover.Config{
		EnableStackTrace: strings.ToLower(cfg.LogLevel) == "debug",
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			logger := middleware.GetRequestFileLogger(c)
			if logger == nil {
				logger = logging.GetFileLogger()
			}
			logger.Error("Panic recovered", zap.Any("panic_value", e))
		},
	}))
	fileLogger.Info("Configuring CORS", zap.String("origins", cfg.CORSAllowOrigins), zap.String("methods", cfg.CORSAllowMethods), zap.String("headers", cfg.CORSAllowHeaders))
	appFiber.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: cfg.CORSAllowMethods,
		AllowHeaders: cfg.CORSAllowHeaders,
	}))
	appFiber.Use(middleware.RequestLoggers(fileLogger, auditLogger))
	if strings.ToLower(cfg.LogLevel) == "debug" {
		appFiber.Use(middleware.RequestDebugLogger())
	}
	appFiber.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:_csrf",
		CookieName:     "portfolio_csrf",
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
		Expiration:     1 * time.Hour,
		ContextKey:     middleware.CSRFTokenContextKey,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			lg := middleware.GetRequestFileLogger(c)
			lg.Warn("CSRF validation failed",
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
				zap.Error(err),
			)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Invalid or missing CSRF token",
			})
		},
	}))
	appFiber.Use(fiberzap.New(fiberzap.Config{
		Logger: fileLogger,
		Fields: []string{"status", "method", "url", "ip", "latency", "error"},
		FieldsFunc: func(c *fiber.Ctx) []zap.Field {
			fields := []zap.Field{zap.String("log_type", "access")}
			reqID := ""
			if idVal := c.Locals(middleware.RequestIDKey); idVal != nil {
				if idStr, ok := idVal.(string); ok {
					reqID = idStr
				}
			}
			if reqID == "" {
				reqID = c.Get(middleware.RequestIDHeader)
			}
			if reqID != "" {
				fields = append(fields, zap.String("request_id", reqID))
			}
			return fields
		},
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health" || strings.HasPrefix(c.Path(), "/uploads")
		},
	}))

	// --- 11. Setup Application Routes ---
	routes.SetupRoutes(appFiber, cfg, fileLogger, components, db)

	// --- 12. Start Audit Retention Sweeper ---
	if components.RetentionSweeper != nil {
		components.RetentionSweeper.Start()
	}

	// --- 13. Start Server & Graceful Shutdown ---
	serverCtx, cancelServerCtx := context.WithCancel(context.Background())
	defer cancelServerCtx()
	serverStopped := make(chan struct{})

	initAppDurationMs := time.Since(initAppStartTime).Milliseconds()

	go func() {
		defer close(serverStopped)
		listenAddr := ":" + cfg.Port
		fileLogger.Info(fmt.Sprintf("Completed initialization application in %d ms.", initAppDurationMs))
		fileLogger.Info("Starting Fiber server...",
			zap.String("address", listenAddr),
			zap.Int("pid", os.Getpid()),
			zap.String("app_env", cfg.AppEnv),
		)

		if err := appFiber.Listen(listenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fileLogger.Error("Server listener failed", zap.String("address", listenAddr), zap.Error(err))
			cancelServerCtx()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	select {
	case s := <-sig:
		fileLogger.Info("Shutdown signal received.", zap.String("signal", s.String()))
	case <-serverCtx.Done():
		fileLogger.Info("Server context cancelled, initiating shutdown.")
	}

	fileLogger.Info("Initiating graceful shutdown...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancelShutdown()

	if components != nil && components.RetentionSweeper != nil {
		components.RetentionSweeper.Stop()
	}

	if err := appFiber.ShutdownWithContext(shutdownCtx); err != nil {
		fileLogger.Error("Fiber server shutdown failed", zap.Error(err))
	} else {
		fileLogger.Info("Fiber server gracefully stopped.")
	}
	<-serverStopped
	fileLogger.Info("HTTP listener goroutine stopped.")

	fileLogger.Info("Syncing file/console logger before shutdown...")
	if errSync := fileLogger.Sync(); errSync != nil {
		errMsg := errSync.Error()
		if strings.Contains(errMsg, "handle is invalid") || strings.Contains(errMsg, "sync /dev/stdout") {
			fileLogger.Debug("Logger sync warning for stdout (handle likely invalid during shutdown).", zap.Error(errSync))
		} else {
			fileLogger.Warn("Error syncing file/console logger.", zap.Error(errSync))
			fmt.Fprintf(os.Stderr, "[WARN] Error syncing file/console logger: %v\n", errSync)
		}
	}
	fmt.Println("[INFO] Logger sync attempts completed.")

	if db != nil {
		if errClose := db.Close(); errClose != nil {
			fmt.Fprintf(os.Stderr, "[ERROR] Error closing SQLite database: %v\n", errClose)
		} else {
			fmt.Println("[INFO] SQLite database connection closed.")
		}
	}

	fmt.Println("[INFO] Application shutdown complete.")
}
