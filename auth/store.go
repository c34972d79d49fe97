// Package auth, credential store access. The service layer talks to the
// store through the UserStore interface; the pgx implementation below is the
// production one, and tests substitute fakes. SQL for the auth feature is
// kept local to this file.
package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations. A registration race on the same regNo is resolved by the
// store's unique index, not by the service's pre-check.
const pgUniqueViolation = "23505"

// Store sentinel errors. The service maps these onto the apperror taxonomy;
// keeping them as sentinels lets test fakes trigger every path without a
// database.
var (
	// ErrUserNotFound means no user row matched the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrRegNoExists means the unique constraint on reg_no rejected an insert.
	ErrRegNoExists = errors.New("registration number already exists")
)

// UserStore is the credential store contract the auth service depends on.
type UserStore interface {
	// CreateUser persists a new user and returns it with the store-assigned
	// id and creation time. Returns ErrRegNoExists on a duplicate regNo.
	CreateUser(ctx context.Context, user *User) (*User, error)
	// GetUserByRegNo returns the user with the given registration number,
	// or ErrUserNotFound.
	GetUserByRegNo(ctx context.Context, regNo string) (*User, error)
}

// PgxUserStore is the PostgreSQL-backed UserStore.
type PgxUserStore struct {
	db *pgxpool.Pool
}

// NewPgxUserStore creates a PgxUserStore on the shared connection pool.
func NewPgxUserStore(db *pgxpool.Pool) *PgxUserStore {
	return &PgxUserStore{db: db}
}

// CreateUser inserts a user row. The uniqueness of reg_no is enforced here,
// at the store level, so two concurrent registrations with the same id
// cannot both succeed regardless of what the service checked beforehand.
func (s *PgxUserStore) CreateUser(ctx context.Context, user *User) (*User, error) {
	query := `INSERT INTO users (reg_no, password_hash, role)
	          VALUES ($1, $2, $3)
	          RETURNING id, created_at`
	err := s.db.QueryRow(ctx, query, user.RegNo, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrRegNoExists
		}
		return nil, err
	}
	return user, nil
}

// GetUserByRegNo looks a user up by registration number.
func (s *PgxUserStore) GetUserByRegNo(ctx context.Context, regNo string) (*User, error) {
	var user User
	query := `SELECT id, reg_no, password_hash, role, created_at
	          FROM users WHERE reg_no = $1`
	err := s.db.QueryRow(ctx, query, regNo).
		Scan(&user.ID, &user.RegNo, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
