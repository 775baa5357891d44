package service

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"campus-events/internal/models"
	"campus-events/internal/repository"

	"gorm.io/gorm"
)

// AuthService resolves a submitted identifier and claimed role to a user
// record, creating one on first login. There is deliberately no credential
// verification: identity is identifier + self-declared role, a known
// limitation of the system, not an oversight.
type AuthService interface {
	Login(ctx context.Context, email string, role models.Role) (*models.User, error)
}

type authService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

func (s *authService) Login(ctx context.Context, email string, role models.Role) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmptyEmail
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		if user.Role != role {
			return nil, &RoleMismatchError{Role: user.Role}
		}
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = &models.User{
		Name:  deriveName(email),
		Email: email,
		Role:  role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race against a concurrent first login with the same
			// identifier; re-read and apply the usual role check.
			existing, findErr := s.users.FindByEmail(ctx, email)
			if findErr != nil {
				return nil, findErr
			}
			if existing.Role != role {
				return nil, &RoleMismatchError{Role: existing.Role}
			}
			return existing, nil
		}
		return nil, err
	}
	return user, nil
}

// deriveName builds a display name from the identifier: the part before "@"
// when one exists, otherwise the whole identifier, with each word capitalized.
func deriveName(email string) string {
	name := email
	if i := strings.Index(email, "@"); i >= 0 {
		name = email[:i]
	}
	words := strings.Fields(name)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
