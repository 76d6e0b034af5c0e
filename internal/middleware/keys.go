package middleware

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// Constants for middleware keys and values
const (
	// --- Logger Keys ---
	RequestFileLoggerKey  ContextKey = "requestFileLogger"
	RequestAuditLoggerKey ContextKey = "requestAuditLogger"
	RequestIDHeader                  = "X-Request-ID" // Header name

	// --- Session Keys ---
	SessionCookieName            = "portfolio_session"
	UsernameKey       ContextKey = "username"

	// --- CSRF ---
	// Plain string: the csrf middleware stores the token in Locals under this key.
	CSRFTokenContextKey = "csrf_token"

	// --- Request ID Key ---
	RequestIDKey ContextKey = "requestID" // Key to store the request ID string in Locals
)
