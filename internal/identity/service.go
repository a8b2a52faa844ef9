package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/alorahq/marketplace/internal/auth"
)

// Service implements registration, login and profile maintenance. Only the
// bcrypt digest of a password is ever stored.
type Service struct {
	Store  Store
	Tokens *auth.Tokens
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (int64, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.FirstName == "" || in.LastName == "" || in.Password == "" ||
		!strings.Contains(in.Email, "@") {
		return 0, ErrMissingFields
	}

	// The unique index on correo_electronico backs this check; a racing
	// insert still surfaces as ErrEmailTaken from Create.
	if _, err := s.Store.FindByEmail(ctx, in.Email); err == nil {
		return 0, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return 0, err
	}

	digest, err := auth.HashPassword(in.Password)
	if err != nil {
		return 0, err
	}
	return s.Store.Create(ctx, &User{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		PasswordDigest: digest,
		Role:           DefaultRole,
	})
}

// Login verifies credentials and issues a signed, time-bounded token.
func (s *Service) Login(ctx context.Context, email, password string) (token string, userID int64, err error) {
	email = strings.TrimSpace(strings.ToLower(email))
	u, err := s.Store.FindByEmail(ctx, email)
	if err != nil {
		return "", 0, err
	}
	if !auth.CheckPassword(u.PasswordDigest, password) {
		return "", 0, ErrInvalidCredentials
	}
	token, err = s.Tokens.Issue(u.ID, u.Email)
	if err != nil {
		return "", 0, err
	}
	return token, u.ID, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*User, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	return s.Store.FindByID(ctx, id)
}

func (s *Service) UpdateProfile(ctx context.Context, id int64, in ProfileInput) error {
	u, err := s.Store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if strings.TrimSpace(in.FirstName) == "" || !strings.Contains(in.Email, "@") {
		return ErrMissingFields
	}
	u.FirstName = strings.TrimSpace(in.FirstName)
	u.LastName = strings.TrimSpace(in.LastName)
	u.Email = in.Email
	u.Phone = strings.TrimSpace(in.Phone)
	u.Address = strings.TrimSpace(in.Address)
	return s.Store.UpdateProfile(ctx, u)
}
