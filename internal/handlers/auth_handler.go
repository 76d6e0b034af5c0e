package handlers

import (
	"errors"
	"time"

	mw "github.com/OriDaer/Portfolio/internal/middleware"
	"github.com/OriDaer/Portfolio/internal/pkg/validation"
	"github.com/OriDaer/Portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler handles the login/logout flow
type AuthHandler struct {
	authService services.AuthService
	// No logger stored here, obtained per request from context
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest defines the expected form fields for login submissions
type LoginRequest struct {
	Username string `form:"username" validate:"required,min=3,max=80"`
	Password string `form:"password" validate:"required,min=6"`
}

// LoginPage handles GET /login. There is no server-side template; the
// response carries the CSRF token the form post must echo back.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":    "Submit username and password to /login",
		"csrf_token": csrfToken(c),
	})
}

// Login handles POST /login requests
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	fileLogger := mw.GetRequestFileLogger(c)
	auditLogger := mw.GetRequestAuditLogger(c)

	if !validation.ParseAndValidate(c, &req) {
		fileLogger.Warn("Login request validation failed or bad request body")
		return nil // Response already sent by ParseAndValidate
	}

	token, err := h.authService.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// One message for unknown user and wrong password alike.
			fileLogger.Warn("Login failed", zap.String("username", req.Username))
			auditLogger.Warn("Login rejected", zap.String("username", req.Username))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Usuario o contraseña incorrectos",
			})
		}
		fileLogger.Error("Internal server error during login", zap.String("username", req.Username), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Login failed due to an internal error",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     mw.SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	fileLogger.Info("Login successful", zap.String("username", req.Username))
	auditLogger.Info("Login successful", zap.String("username", req.Username))
	return c.Redirect("/dashboard", fiber.StatusFound)
}

// Logout handles GET /logout requests
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	fileLogger := mw.GetRequestFileLogger(c)

	c.Cookie(&fiber.Cookie{
		Name:     mw.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	fileLogger.Info("Session cleared")
	return c.Redirect("/", fiber.StatusFound)
}
