// Package chat, history store access. The append is a single INSERT keyed
// by the verified registration number: one atomic store-level mutation, no
// read-modify-write, so concurrent relays from the same user cannot lose
// each other's records and a half-written record is never visible.
package chat

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/archon-go/auth"
)

// ChatStore is the history persistence contract the relay service depends on.
type ChatStore interface {
	// AppendRecord appends one complete record to the history of the user
	// with the given registration number. Returns auth.ErrUserNotFound when
	// no such user exists.
	AppendRecord(ctx context.Context, regNo string, rec *ChatRecord) error
	// RecentByRegNo returns up to limit records for the user, most recent
	// first.
	RecentByRegNo(ctx context.Context, regNo string, limit int) ([]ChatRecord, error)
}

// PgxChatStore is the PostgreSQL-backed ChatStore.
type PgxChatStore struct {
	db *pgxpool.Pool
}

// NewPgxChatStore creates a PgxChatStore on the shared connection pool.
func NewPgxChatStore(db *pgxpool.Pool) *PgxChatStore {
	return &PgxChatStore{db: db}
}

// AppendRecord resolves the user and inserts the record in one statement.
func (s *PgxChatStore) AppendRecord(ctx context.Context, regNo string, rec *ChatRecord) error {
	query := `INSERT INTO chat_records
	              (user_id, query, response, success, response_time_ms, language, category)
	          SELECT id, $2, $3, $4, $5, $6, $7
	          FROM users WHERE reg_no = $1
	          RETURNING id, created_at`
	err := s.db.QueryRow(ctx, query,
		regNo, rec.Query, rec.Response, rec.Success, rec.ResponseTimeMs, rec.Language, rec.Category).
		Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// The SELECT matched no user row, so nothing was inserted.
			return auth.ErrUserNotFound
		}
		return err
	}
	return nil
}

// RecentByRegNo reads the user's history, newest first.
func (s *PgxChatStore) RecentByRegNo(ctx context.Context, regNo string, limit int) ([]ChatRecord, error) {
	query := `SELECT cr.id, cr.query, cr.response, cr.success,
	                 cr.response_time_ms, cr.language, cr.category, cr.created_at
	          FROM chat_records cr
	          JOIN users u ON u.id = cr.user_id
	          WHERE u.reg_no = $1
	          ORDER BY cr.created_at DESC, cr.id DESC
	          LIMIT $2`
	rows, err := s.db.Query(ctx, query, regNo, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]ChatRecord, 0, limit)
	for rows.Next() {
		var rec ChatRecord
		if err := rows.Scan(&rec.ID, &rec.Query, &rec.Response, &rec.Success,
			&rec.ResponseTimeMs, &rec.Language, &rec.Category, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
