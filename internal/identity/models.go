package identity

import "errors"

const DefaultRole = "usuario"

var (
	ErrMissingFields      = errors.New("missing registration fields")
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User carries the account identity. PasswordDigest holds the bcrypt hash
// and never leaves the service layer.
type User struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	PasswordDigest string `json:"-"`
	Role           string `json:"role"`
	Phone          string `json:"phone,omitempty"`
	Address        string `json:"address,omitempty"`
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type ProfileInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
}
