package user

import (
	"errors"
	"fmt"

	"perfilapp/pkg/hasher"
)

// ServiceInterface exposes the two credential strategies. Each call
// resolves to exactly one outcome: an identity or a typed error.
type ServiceInterface interface {
	Signup(name, username, password string) (*User, error)
	Login(username, password string) (*User, error)
}

type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repo: repo}
}

// Signup creates an account for a username nobody holds yet. The
// duplicate check is delegated to the store's atomic insert, so two
// concurrent signups for the same username cannot both succeed.
func (s *Service) Signup(name, username, password string) (*User, error) {
	hashed, err := hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password error: %s", err)
	}

	user := &User{
		Name:         name,
		Username:     username,
		PasswordHash: hashed,
	}

	if err := s.Repo.InsertIfAbsent(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the password of an existing account. The two rejection
// reasons stay distinct here; callers must not surface the difference.
func (s *Service) Login(username, password string) (*User, error) {
	user, err := s.Repo.FindByUsername(username)
	if errors.Is(err, ErrNoSuchUser) {
		return nil, ErrNoSuchUser
	}
	if err != nil {
		return nil, err
	}

	if !hasher.Verify(password, user.PasswordHash) {
		return nil, ErrBadPassword
	}

	return user, nil
}
