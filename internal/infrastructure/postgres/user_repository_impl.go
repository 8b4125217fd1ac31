package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/warungkode/accounts-backend/internal/domain/entity"
	"github.com/warungkode/accounts-backend/internal/domain/repository"
)

// Querier is the subset of pgxpool.Pool the repository needs. pgxmock's
// pool satisfies it, which keeps the repository testable without a live
// database.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, gender)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, u.Name, u.Email, u.PasswordHash, u.Gender)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return classify("create user", err)
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := &entity.User{}
	row := r.db.QueryRow(ctx, `
		SELECT id, name, email, password_hash, gender, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email)

	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Gender,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, classify("get user by email", err)
	}
	return u, nil
}

// classify maps postgres errors onto the repository error contract. The
// unique index on email is the authoritative duplicate check, so a
// unique violation surfaces as ErrDuplicateEmail no matter what the
// caller saw in any earlier read.
func classify(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return repository.ErrDuplicateEmail
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return &repository.ConstraintError{Constraint: pgErr.ConstraintName, Err: err}
		}
	}
	return fmt.Errorf("%s: %w: %w", op, repository.ErrUnavailable, err)
}

var _ repository.UserRepository = (*UserRepository)(nil)
