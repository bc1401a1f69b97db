package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/hemolink/api/internal/domain/user"
	"github.com/hemolink/api/internal/repo/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	getFn func(ctx context.Context, email string) (user.User, error)
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return f.getFn(ctx, email)
}

func TestAuthenticate(t *testing.T) {
	a := NewAuthenticator(memory.NewUsersRepo(memory.DefaultUsers()))

	tests := []struct {
		name     string
		email    string
		password string
		wantID   string
		wantErr  error
	}{
		{name: "valid", email: "admin@hemolink.com", password: "demo123", wantID: "U001"},
		{name: "wrong password", email: "admin@hemolink.com", password: "nope", wantErr: ErrInvalidCredentials},
		{name: "unknown email", email: "ghost@hemolink.com", password: "demo123", wantErr: ErrInvalidCredentials},
		{name: "email case differs", email: "ADMIN@hemolink.com", password: "demo123", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := a.Authenticate(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, user.User{}, u)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, u.ID)
		})
	}
}

func TestAuthenticate_HidesLookupErrors(t *testing.T) {
	a := NewAuthenticator(&fakeUsers{getFn: func(context.Context, string) (user.User, error) {
		return user.User{}, errors.New("store exploded")
	}})

	_, err := a.Authenticate(context.Background(), "admin@hemolink.com", "demo123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_PassesThroughContextErrors(t *testing.T) {
	a := NewAuthenticator(memory.NewUsersRepo(memory.DefaultUsers()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Authenticate(ctx, "admin@hemolink.com", "demo123")
	assert.ErrorIs(t, err, context.Canceled)
}
