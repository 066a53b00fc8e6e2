package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/todokeeper/internal/common"
	"github.com/yourorg/todokeeper/internal/server/auth"
)

// Identity is the authenticated principal extracted from the token cookie.
type Identity struct {
	UserID int64
	Email  string
}

const identityKey = "identity"

// requireAuth gates the todo routes. A missing cookie answers 401 with a
// redirect hint; an invalid or expired token additionally clears the cookie
// so the browser stops resending it.
func (s *Server) requireAuth(c *fiber.Ctx) error {
	token := c.Cookies(common.TokenCookieName)
	if token == "" {
		return respondAuthError(c, "Authentication required", "No token provided")
	}

	claims, err := auth.ParseToken(token, []byte(s.cfg.SecretKey))
	if err != nil {
		s.clearTokenCookie(c)
		return respondAuthError(c, "Invalid or expired token", nil)
	}

	c.Locals(identityKey, Identity{UserID: claims.UserID, Email: claims.Email})
	return c.Next()
}

// identityFromCtx returns the principal stored by requireAuth.
func identityFromCtx(c *fiber.Ctx) (Identity, bool) {
	id, ok := c.Locals(identityKey).(Identity)
	return id, ok
}

func (s *Server) setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     common.TokenCookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   s.cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
		MaxAge:   int(s.cfg.TokenValidityDuration.Seconds()),
	})
}

func (s *Server) clearTokenCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     common.TokenCookieName,
		Value:    "",
		HTTPOnly: true,
		Secure:   s.cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
		Expires:  time.Now().Add(-time.Hour),
	})
}
