package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/warungkode/accounts-backend/internal/domain/entity"
	repo "github.com/warungkode/accounts-backend/internal/domain/repository"
	"github.com/warungkode/accounts-backend/pkg/helpers"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. Callers must not distinguish the two, so accounts
	// cannot be enumerated through the login endpoint.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when the requested email is already
	// registered, whether the pre-check or the insert caught it.
	ErrEmailTaken = errors.New("email already registered")
)

const (
	MinNameLen     = 2
	MinPasswordLen = 6
	// bcrypt ignores everything past 72 bytes, so longer passwords
	// are rejected instead of silently truncated.
	MaxPasswordLen = 72
)

// ValidationError carries per-field messages for a rejected request.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

// Service implements registration and authentication over an abstract
// user repository. It holds no per-request state and is safe for
// concurrent use.
type Service struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewService(r repo.UserRepository, logger *logrus.Logger) *Service {
	return &Service{Repo: r, Logger: logger}
}

// NormalizeEmail trims and lower-cases an address. The normalized form
// is the uniqueness key everywhere: lookups, inserts and the DB index.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Gender   string
}

// validate checks the registration input before anything is hashed or
// persisted. Password rules apply to the plaintext, never the hash.
func (in RegisterInput) validate() *ValidationError {
	fields := map[string]string{}

	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "is required"
	} else if len(strings.TrimSpace(in.Name)) < MinNameLen {
		fields["name"] = fmt.Sprintf("must be at least %d characters long", MinNameLen)
	}
	if NormalizeEmail(in.Email) == "" {
		fields["email"] = "is required"
	}
	if in.Password == "" {
		fields["password"] = "is required"
	} else if len(in.Password) < MinPasswordLen {
		fields["password"] = fmt.Sprintf("must be at least %d characters long", MinPasswordLen)
	} else if len(in.Password) > MaxPasswordLen {
		fields["password"] = fmt.Sprintf("must be at most %d characters long", MaxPasswordLen)
	}
	if strings.TrimSpace(in.Gender) == "" {
		fields["gender"] = "is required"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Register validates the input, checks the email is free, hashes the
// password and persists the new account. The repository's unique index
// is the authoritative duplicate check; the pre-read only gives a
// friendlier fast path, and a duplicate-key failure from Create is
// reported exactly like a pre-check hit.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if verr := in.validate(); verr != nil {
		return nil, verr
	}

	email := NormalizeEmail(in.Email)

	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("register: lookup %q: %w", email, err)
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	u := &entity.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Gender:       strings.TrimSpace(in.Gender),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		var ce *repo.ConstraintError
		switch {
		case errors.Is(err, repo.ErrDuplicateEmail):
			return nil, ErrEmailTaken
		case errors.As(err, &ce):
			return nil, &ValidationError{Fields: map[string]string{
				fieldForConstraint(ce.Constraint): "is invalid",
			}}
		default:
			return nil, fmt.Errorf("register: create %q: %w", email, err)
		}
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user registered")
	}
	return u, nil
}

// fieldForConstraint maps a schema constraint name onto the request
// field it guards, following the users table naming.
func fieldForConstraint(constraint string) string {
	switch {
	case strings.Contains(constraint, "name"):
		return "name"
	case strings.Contains(constraint, "email"):
		return "email"
	case strings.Contains(constraint, "password"):
		return "password"
	case strings.Contains(constraint, "gender"):
		return "gender"
	default:
		return "payload"
	}
}

// Login authenticates an email/password pair. Unknown account and
// wrong password both come back as ErrInvalidCredentials; anything
// else is an infrastructure failure the handler reports as a 500.
func (s *Service) Login(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: lookup: %w", err)
	}

	ok, err := helpers.VerifyPassword(u.PasswordHash, password)
	if err != nil {
		// Corrupt stored record; not the caller's fault.
		return nil, fmt.Errorf("login: verify for %q: %w", u.Email, err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
