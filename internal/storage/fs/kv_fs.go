package fs

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"

	"CheckNotes/internal/storage"
)

// KVFS — файловое хранилище: одно значение на файл в каталоге dir.
type KVFS struct {
	dir string
}

var _ storage.Storage = (*KVFS)(nil)

// New создаёт каталог (0700) при необходимости.
func New(dir string) (*KVFS, error) {
	if dir == "" {
		return nil, errors.New("empty storage dir")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &KVFS{dir: dir}, nil
}

func (s *KVFS) path(key string) (string, error) {
	if key == "" {
		return "", errors.New("empty key")
	}
	return filepath.Join(s.dir, url.PathEscape(key)+".json"), nil
}

func (s *KVFS) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, storage.Wrap("get", key, err)
	}
	p, err := s.path(key)
	if err != nil {
		return nil, false, storage.Wrap("get", key, err)
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, storage.Wrap("get", key, err)
	}
	return b, true, nil
}

// Set пишет во временный файл и переименовывает его, так что читатель видит либо старое, либо новое значение.
func (s *KVFS) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return storage.Wrap("set", key, err)
	}
	p, err := s.path(key)
	if err != nil {
		return storage.Wrap("set", key, err)
	}
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return storage.Wrap("set", key, err)
	}
	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return storage.Wrap("set", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return storage.Wrap("set", key, err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		_ = os.Remove(tmp.Name())
		return storage.Wrap("set", key, err)
	}
	return nil
}
