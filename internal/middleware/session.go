package middleware

import (
	"github.com/OriDaer/Portfolio/internal/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequireSession returns a Fiber middleware gating owner-only routes. It
// validates the session cookie and stores the username in Locals. Requests
// without a valid session are redirected to the login page; the original
// request is discarded, there is no post-login replay.
func RequireSession(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		logger := GetRequestFileLogger(c)

		tokenString := c.Cookies(SessionCookieName)
		if tokenString == "" {
			logger.Warn("Missing session cookie", zap.String("path", c.Path()))
			return c.Redirect("/login", fiber.StatusFound)
		}

		claims, err := utils.ValidateSessionToken(tokenString, secret)
		if err != nil {
			logger.Warn("Invalid session token", zap.Error(err))
			c.ClearCookie(SessionCookieName)
			return c.Redirect("/login", fiber.StatusFound)
		}

		c.Locals(UsernameKey, claims.Username)
		logger.Debug("Session validated", zap.String("username", claims.Username))

		return c.Next()
	}
}

// SessionUsername retrieves the authenticated username stored by
// RequireSession. Returns an empty string when the request carries no session.
func SessionUsername(c *fiber.Ctx) string {
	if username, ok := c.Locals(UsernameKey).(string); ok {
		return username
	}
	return ""
}
