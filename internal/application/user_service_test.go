package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungkode/accounts-backend/internal/domain/entity"
	repo "github.com/warungkode/accounts-backend/internal/domain/repository"
	"github.com/warungkode/accounts-backend/internal/infrastructure/memory"
	"github.com/warungkode/accounts-backend/pkg/helpers"
)

func validInput() RegisterInput {
	return RegisterInput{
		Name:     "Ana",
		Email:    "ANA@Example.com",
		Password: "secret1",
		Gender:   "F",
	}
}

func TestRegister_NormalizesAndHashes(t *testing.T) {
	store := memory.NewUserRepository()
	svc := NewService(store, nil)

	u, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", u.Email, "email is stored trimmed and lower-cased")
	assert.Equal(t, "Ana", u.Name)
	assert.Equal(t, "F", u.Gender)
	assert.NotEmpty(t, u.ID)
	assert.NotEqual(t, "secret1", u.PasswordHash, "plaintext must never be stored")

	ok, err := helpers.VerifyPassword(u.PasswordHash, "secret1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *RegisterInput)
		field  string
	}{
		{"missing name", func(in *RegisterInput) { in.Name = "" }, "name"},
		{"name too short", func(in *RegisterInput) { in.Name = "A" }, "name"},
		{"missing email", func(in *RegisterInput) { in.Email = "   " }, "email"},
		{"missing password", func(in *RegisterInput) { in.Password = "" }, "password"},
		{"password too short", func(in *RegisterInput) { in.Password = "five5" }, "password"},
		{"missing gender", func(in *RegisterInput) { in.Gender = "" }, "gender"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewUserRepository()
			// Any repository access would blow up the test.
			store.SetGetError(errors.New("repository touched on invalid input"))
			store.SetCreateError(errors.New("repository touched on invalid input"))
			svc := NewService(store, nil)

			in := validInput()
			tt.mutate(&in)

			_, err := svc.Register(context.Background(), in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
			assert.Equal(t, 0, store.Len(), "no side effects on invalid input")
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Run("pre-check hit", func(t *testing.T) {
		store := memory.NewUserRepository()
		svc := NewService(store, nil)

		_, err := svc.Register(context.Background(), validInput())
		require.NoError(t, err)

		in := validInput()
		in.Email = "ana@example.COM" // different spelling, same normalized key
		_, err = svc.Register(context.Background(), in)
		require.ErrorIs(t, err, ErrEmailTaken)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("insert race", func(t *testing.T) {
		// The pre-read misses but the store's unique index rejects the
		// insert; the caller must see the same conflict either way.
		store := memory.NewUserRepository()
		store.SetCreateError(repo.ErrDuplicateEmail)
		svc := NewService(store, nil)

		_, err := svc.Register(context.Background(), validInput())
		require.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestRegister_RepositoryFailures(t *testing.T) {
	t.Run("constraint violation surfaces as field error", func(t *testing.T) {
		store := memory.NewUserRepository()
		store.SetCreateError(&repo.ConstraintError{
			Constraint: "users_name_check",
			Err:        errors.New("new row violates check constraint"),
		})
		svc := NewService(store, nil)

		_, err := svc.Register(context.Background(), validInput())
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "name")
	})

	t.Run("unavailable store is neither validation nor conflict", func(t *testing.T) {
		store := memory.NewUserRepository()
		store.SetCreateError(repo.ErrUnavailable)
		svc := NewService(store, nil)

		_, err := svc.Register(context.Background(), validInput())
		require.Error(t, err)
		var verr *ValidationError
		assert.False(t, errors.As(err, &verr))
		assert.NotErrorIs(t, err, ErrEmailTaken)
		assert.ErrorIs(t, err, repo.ErrUnavailable)
	})
}

func TestLogin(t *testing.T) {
	store := memory.NewUserRepository()
	svc := NewService(store, nil)

	_, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		u, err := svc.Login(context.Background(), "  ANA@example.com ", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "Ana", u.Name)
		assert.Equal(t, "ana@example.com", u.Email)
		assert.Equal(t, "F", u.Gender)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, errWrongPwd := svc.Login(context.Background(), "ana@example.com", "wrong")
		_, errUnknown := svc.Login(context.Background(), "ghost@example.com", "secret1")

		require.ErrorIs(t, errWrongPwd, ErrInvalidCredentials)
		require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		assert.Equal(t, errWrongPwd.Error(), errUnknown.Error())
	})

	t.Run("store failure is not an auth error", func(t *testing.T) {
		store.SetGetError(repo.ErrUnavailable)
		defer store.SetGetError(nil)

		_, err := svc.Login(context.Background(), "ana@example.com", "secret1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("corrupt stored record is not an auth error", func(t *testing.T) {
		corrupt := memory.NewUserRepository()
		require.NoError(t, corrupt.Create(context.Background(), &entity.User{
			Name:         "Bob",
			Email:        "bob@example.com",
			PasswordHash: "garbage",
			Gender:       "M",
		}))

		_, err := NewService(corrupt, nil).Login(context.Background(), "bob@example.com", "secret1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}
