package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"CheckNotes/internal/storage"

	_ "modernc.org/sqlite"
)

// KVSQLite — локальное хранилище (аналог localStorage) в файле SQLite.
type KVSQLite struct {
	db *sql.DB
}

var _ storage.Storage = (*KVSQLite)(nil)

// Open открывает (и создаёт при необходимости) файл БД.
func Open(path string) (*KVSQLite, error) {
	if path == "" {
		return nil, errors.New("empty sqlite path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return &KVSQLite{db: db}, nil
}

// Close закрывает соединение с БД.
func (r *KVSQLite) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Migrate гарантирует наличие таблицы kv.
func (r *KVSQLite) Migrate() error {
	_, err := r.db.Exec(initialDDL())
	return err
}

func (r *KVSQLite) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, storage.Wrap("get", key, err)
	}
	return value, true, nil
}

func (r *KVSQLite) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO kv(key, value, updated_at) VALUES(?, ?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix(),
	)
	return storage.Wrap("set", key, err)
}
