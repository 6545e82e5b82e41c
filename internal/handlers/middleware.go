package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Sari-Dot/Myquiz/internal/service"
	"github.com/Sari-Dot/Myquiz/internal/token"
)

// AdminTokenHeader is the dedicated header for admin tokens. The standard
// bearer header is accepted only when its value is colon-delimited, so a
// public API key sent as a bearer on the same request is never mistaken for
// an admin token.
const AdminTokenHeader = "X-Admin-Token"

// ExtractToken returns the admin token from the request headers, or "".
func ExtractToken(c *fiber.Ctx) string {
	if tok := c.Get(AdminTokenHeader); tok != "" {
		return tok
	}
	if auth := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(auth, "Bearer ") {
		tok := strings.TrimPrefix(auth, "Bearer ")
		if containsDelimiter(tok) {
			return tok
		}
	}
	return ""
}

// RawToken returns whatever token the request carries without the structural
// bearer check. Logout uses it: legacy tokens are opaque, so the
// colon-delimited filter would hide exactly the sessions logout can clear.
func RawToken(c *fiber.Ctx) string {
	if tok := c.Get(AdminTokenHeader); tok != "" {
		return tok
	}
	return strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
}

// RequireAdmin gates mutating endpoints behind a resolved admin identity.
// The resolved username is stored in Locals under "adminUsername".
func (h *QuizHandlers) RequireAdmin(c *fiber.Ctx) error {
	username, err := h.authService.Verify(c.Context(), ExtractToken(c))
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			return fail(c, fiber.StatusUnauthorized, "Unauthorized - Invalid or expired admin session")
		}
		return fail(c, fiber.StatusInternalServerError, "Failed to verify session")
	}
	c.Locals("adminUsername", username)
	return c.Next()
}

func containsDelimiter(tok string) bool {
	return strings.Contains(tok, token.Delimiter)
}

func splitToken(tok string) []string {
	return strings.Split(tok, token.Delimiter)
}
