package user

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"` // mock table keeps plaintext; never serialize
	Role     string `json:"role"`
	Name     string `json:"name"`
}

// Public is the only user shape that leaves the API.
type Public struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (u User) Public() Public {
	return Public{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}
