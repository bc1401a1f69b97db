package auth

import (
	"context"
	"errors"

	"github.com/hemolink/api/internal/domain/user"
	"github.com/hemolink/api/internal/security"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

type UserReader interface {
	GetByEmail(ctx context.Context, email string) (user.User, error)
}

type Authenticator struct {
	users UserReader
}

func NewAuthenticator(users UserReader) *Authenticator {
	return &Authenticator{users: users}
}

// Authenticate returns the matching user record or ErrInvalidCredentials.
// Context errors are passed through.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (user.User, error) {
	u, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return user.User{}, ctxErr
		}
		return user.User{}, ErrInvalidCredentials
	}

	if err := security.CheckPassword(u.Password, password); err != nil {
		return user.User{}, ErrInvalidCredentials
	}

	return u, nil
}
