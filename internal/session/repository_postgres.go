package session

import (
	"database/sql"

	"github.com/go-faster/errors"
	"github.com/lib/pq"

	"github.com/kuberbiotech/kuber-web/internal/kv"
)

const (
	createSessionsTable = `CREATE TABLE IF NOT EXISTS site_sessions (
		session_id TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (session_id, key)
	)`
	getValueQuery    = `SELECT value FROM site_sessions WHERE session_id = $1 AND key = $2`
	upsertValueQuery = `INSERT INTO site_sessions (session_id, key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (session_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	deleteValuesQuery = `DELETE FROM site_sessions WHERE session_id = $1 AND key = ANY($2)`
)

// PostgresRepository implements Repository using the site_sessions table.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the sessions table when missing.
func (r *PostgresRepository) EnsureSchema() error {
	if _, err := r.db.Exec(createSessionsTable); err != nil {
		return errors.Wrap(err, "create site_sessions")
	}
	return nil
}

func (r *PostgresRepository) Get(sid, key string) (string, error) {
	var value string
	err := r.db.QueryRow(getValueQuery, sid, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", kv.ErrNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "get session value")
	}
	return value, nil
}

func (r *PostgresRepository) Set(sid, key, value string) error {
	if _, err := r.db.Exec(upsertValueQuery, sid, key, value); err != nil {
		return errors.Wrap(err, "set session value")
	}
	return nil
}

func (r *PostgresRepository) Delete(sid string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if _, err := r.db.Exec(deleteValuesQuery, sid, pq.Array(keys)); err != nil {
		return errors.Wrap(err, "delete session values")
	}
	return nil
}
