package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

// DB keeps one serialized game per conversation key in sqlite.
type DB struct {
	conn *sql.DB
	log  *slog.Logger
	now  func() time.Time
}

// New initializes the database connection and creates the schema.
func New(dsn string, log *slog.Logger) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	d := &DB{conn: db, log: log, now: time.Now}
	if err := d.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info("Database connected", "dsn", dsn)
	return d, nil
}

func (d *DB) migrate() error {
	// expires_at is unix seconds, 0 for no expiry
	_, err := d.conn.Exec(`
	CREATE TABLE IF NOT EXISTS game_state (
		conversation_key TEXT PRIMARY KEY,
		record TEXT NOT NULL,
		expires_at INTEGER NOT NULL DEFAULT 0
	);`)
	return err
}

func (d *DB) Close() error {
	d.log.Info("Database connection closing.")
	return d.conn.Close()
}

// Get returns the stored record for key. Expired rows read as absent and are removed.
func (d *DB) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var (
		record    string
		expiresAt int64
	)
	err := d.conn.QueryRowContext(ctx, "SELECT record, expires_at FROM game_state WHERE conversation_key = ?", key).Scan(&record, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if expiresAt > 0 && d.now().Unix() >= expiresAt {
		d.log.Debug("Dropping expired game", "key", key)
		if err := d.Delete(ctx, key); err != nil {
			return nil, false, err
		}
		return nil, false, nil
	}
	return []byte(record), true, nil
}

// Set stores record under key. A zero ttl keeps it until deleted.
func (d *DB) Set(ctx context.Context, key string, record []byte, ttl time.Duration) error {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = d.now().Add(ttl).Unix()
	}
	_, err := d.conn.ExecContext(ctx, `
		INSERT INTO game_state (conversation_key, record, expires_at)
		VALUES (?, ?, ?)
		ON CONFLICT(conversation_key) DO UPDATE SET
		record = excluded.record,
		expires_at = excluded.expires_at
	`, key, string(record), expiresAt)
	return err
}

// Delete removes the record for key. Deleting a missing key is not an error.
func (d *DB) Delete(ctx context.Context, key string) error {
	_, err := d.conn.ExecContext(ctx, "DELETE FROM game_state WHERE conversation_key = ?", key)
	return err
}

// PurgeExpired deletes every expired row and returns how many were removed.
func (d *DB) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := d.conn.ExecContext(ctx, "DELETE FROM game_state WHERE expires_at > 0 AND expires_at <= ?", d.now().Unix())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
