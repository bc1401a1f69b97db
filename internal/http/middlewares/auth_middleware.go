package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hemolink/api/internal/actorctx"
	"github.com/hemolink/api/internal/auth"
)

// Keep this small interface so tests can fake it easily.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	jwt      TokenVerifier
	observer func(result string)
}

func NewAuthMiddleware(jwt TokenVerifier, observer func(result string)) *AuthMiddleware {
	if observer == nil {
		observer = func(string) {}
	}

	return &AuthMiddleware{jwt: jwt, observer: observer}
}

// RequireAuth admits requests carrying a valid, unexpired Bearer token. It only
// establishes identity; the role claim is exposed but never enforced.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, raw, found := strings.Cut(c.GetHeader("Authorization"), " ")
		if !found || !strings.EqualFold(scheme, "Bearer") {
			abortError(c, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header")
			return
		}

		raw = strings.TrimSpace(raw)
		if raw == "" {
			abortError(c, http.StatusUnauthorized, "unauthorized", "Missing or invalid access token")
			return
		}

		claims, err := m.jwt.Verify(raw)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				m.observer("expired")
			} else {
				m.observer("invalid")
			}
			abortError(c, http.StatusUnauthorized, "unauthorized", "Invalid or expired access token")
			return
		}
		m.observer("valid")

		c.Set(ctxSubjectKey, claims.Subject)
		c.Set(ctxRoleKey, claims.Role)

		actor := actorctx.Actor{Subject: claims.Subject, Role: claims.Role}
		if claims.ExpiresAt != nil {
			actor.ExpiresAt = claims.ExpiresAt.Time.UTC()
		}
		c.Request = c.Request.WithContext(actorctx.WithActor(c.Request.Context(), actor))

		c.Next()
	}
}

func SubjectFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxSubjectKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func RoleFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxRoleKey)
	if !ok {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}
