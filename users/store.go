// Package users, store access for user administration and profiles.
package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/archon-go/auth"
)

// AdminStore is the persistence contract for the admin and profile
// operations.
type AdminStore interface {
	// ListUsers returns all users, newest first.
	ListUsers(ctx context.Context) ([]auth.User, error)
	// DeleteByRegNo removes a user and returns the deleted row. Chat records
	// and file metadata go with it via the store's cascading constraint.
	// Returns auth.ErrUserNotFound when no row matched.
	DeleteByRegNo(ctx context.Context, regNo string) (*auth.User, error)
	// CountUsersByRole counts users holding the given role.
	CountUsersByRole(ctx context.Context, role string) (int64, error)
	// CountChats counts chat records across all users.
	CountChats(ctx context.Context) (int64, error)
	// GetProfile returns a user with their chat and uploaded-file counts.
	// Returns auth.ErrUserNotFound when the user does not exist.
	GetProfile(ctx context.Context, regNo string) (*auth.User, int64, int64, error)
}

// PgxAdminStore is the PostgreSQL-backed AdminStore.
type PgxAdminStore struct {
	db *pgxpool.Pool
}

// NewPgxAdminStore creates a PgxAdminStore on the shared connection pool.
func NewPgxAdminStore(db *pgxpool.Pool) *PgxAdminStore {
	return &PgxAdminStore{db: db}
}

// ListUsers returns every user row, newest first. Hashes stay inside the
// auth.User model and are stripped by the service's projection.
func (s *PgxAdminStore) ListUsers(ctx context.Context) ([]auth.User, error) {
	query := `SELECT id, reg_no, role, created_at
	          FROM users ORDER BY created_at DESC, id DESC`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []auth.User
	for rows.Next() {
		var u auth.User
		if err := rows.Scan(&u.ID, &u.RegNo, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// DeleteByRegNo deletes a user row and returns its former contents.
func (s *PgxAdminStore) DeleteByRegNo(ctx context.Context, regNo string) (*auth.User, error) {
	var u auth.User
	query := `DELETE FROM users WHERE reg_no = $1
	          RETURNING id, reg_no, role, created_at`
	err := s.db.QueryRow(ctx, query, regNo).Scan(&u.ID, &u.RegNo, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// CountUsersByRole counts users with the given role.
func (s *PgxAdminStore) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	err := s.db.QueryRow(ctx, `SELECT count(*) FROM users WHERE role = $1`, role).Scan(&count)
	return count, err
}

// CountChats counts all chat records.
func (s *PgxAdminStore) CountChats(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRow(ctx, `SELECT count(*) FROM chat_records`).Scan(&count)
	return count, err
}

// GetProfile returns the user plus chat and file counts in one query.
func (s *PgxAdminStore) GetProfile(ctx context.Context, regNo string) (*auth.User, int64, int64, error) {
	var u auth.User
	var chats, files int64
	query := `SELECT u.id, u.reg_no, u.role, u.created_at,
	                 (SELECT count(*) FROM chat_records cr WHERE cr.user_id = u.id),
	                 (SELECT count(*) FROM uploaded_files uf WHERE uf.user_id = u.id)
	          FROM users u WHERE u.reg_no = $1`
	err := s.db.QueryRow(ctx, query, regNo).
		Scan(&u.ID, &u.RegNo, &u.Role, &u.CreatedAt, &chats, &files)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, 0, auth.ErrUserNotFound
		}
		return nil, 0, 0, err
	}
	return &u, chats, files, nil
}
