package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hemolink/api/internal/actorctx"
	"github.com/hemolink/api/internal/auth"
	"github.com/hemolink/api/internal/domain/user"
)

type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (user.User, error)
}

type TokenIssuer interface {
	Issue(subject, role string) (string, error)
}

// LoginObserver receives one result label per login attempt.
type LoginObserver func(result string)

type AuthHandler struct {
	users    Authenticator
	tokens   TokenIssuer
	log      *slog.Logger
	observer LoginObserver
}

func NewAuthHandler(users Authenticator, tokens TokenIssuer, log *slog.Logger, observer LoginObserver) *AuthHandler {
	if observer == nil {
		observer = func(string) {}
	}

	return &AuthHandler{
		users:    users,
		tokens:   tokens,
		log:      log,
		observer: observer,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	User  user.Public `json:"user"`
	Token string      `json:"token"`
}

type MeResponse struct {
	User      MeUser    `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type MeUser struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	found, err := h.users.Authenticate(cctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.observer("invalid_credentials")
			RespondUnAuthorized(ctx, "invalid_credentials", "Invalid credentials")
			return
		}

		h.observer("error")
		h.log.ErrorContext(ctx.Request.Context(), "login lookup failed", "err", err)
		RespondInternal(ctx, "Could not complete login")
		return
	}

	token, err := h.tokens.Issue(found.ID, found.Role)
	if err != nil {
		h.observer("error")
		h.log.ErrorContext(ctx.Request.Context(), "token signing failed", "err", err)
		RespondInternal(ctx, "Could not generate access token")
		return
	}

	h.observer("success")

	ctx.JSON(http.StatusOK, LoginResponse{
		User:  found.Public(),
		Token: token,
	})
}

// Me reports the identity of a verified token; mounted behind RequireAuth.
func (h *AuthHandler) Me(ctx *gin.Context) {
	actor, ok := actorctx.From(ctx.Request.Context())
	if !ok {
		RespondUnAuthorized(ctx, "unauthorized", "Missing identity context")
		return
	}

	ctx.JSON(http.StatusOK, MeResponse{
		User:      MeUser{ID: actor.Subject, Role: actor.Role},
		ExpiresAt: actor.ExpiresAt,
	})
}
