package memory

import (
	"context"
	"errors"

	"github.com/hemolink/api/internal/domain/user"
)

var ErrUserNotFound = errors.New("user not found")

// DefaultUsers is the mock user table the API ships with.
func DefaultUsers() []user.User {
	return []user.User{
		{ID: "U001", Email: "admin@hemolink.com", Password: "demo123", Role: "admin", Name: "Admin"},
	}
}

// UsersRepo is a read-only user table keyed by exact email.
type UsersRepo struct {
	byEmail map[string]user.User
}

func NewUsersRepo(users []user.User) *UsersRepo {
	byEmail := make(map[string]user.User, len(users))

	for _, u := range users {
		// first record wins on duplicate emails
		if _, exists := byEmail[u.Email]; exists {
			continue
		}
		byEmail[u.Email] = u
	}

	return &UsersRepo{byEmail: byEmail}
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	if err := ctx.Err(); err != nil {
		return user.User{}, err
	}

	u, ok := r.byEmail[email]
	if !ok {
		return user.User{}, ErrUserNotFound
	}

	return u, nil
}

func (r *UsersRepo) Len() int {
	return len(r.byEmail)
}
