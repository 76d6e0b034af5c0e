package utils

import "fmt"

// MaskSecret renders a secret for log output without revealing it.
func MaskSecret(secret string) string {
	switch {
	case secret == "":
		return "--- EMPTY ---"
	case secret == "default-secret":
		return "default-secret (!!! WARNING: Using default secret !!!)"
	case len(secret) < 8:
		return fmt.Sprintf("*** MASKED (short: %d chars) ***", len(secret))
	default:
		return "*** MASKED ***"
	}
}
