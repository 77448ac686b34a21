package storage

import (
	"context"
	"errors"
	"fmt"
)

// Storage — внешний key-value коллаборатор, в котором хранится сериализованный список заметок.
type Storage interface {
	// Get возвращает значение по ключу; ok=false, если значения нет.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set полностью заменяет значение по ключу.
	Set(ctx context.Context, key string, value []byte) error
}

var (
	// ErrStorage matches every error produced by a storage adapter.
	ErrStorage = errors.New("storage error")
	// ErrQuotaExceeded is reported when the value does not fit into the backend limits.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	// ErrUnauthorized is reported by the sync backend when the client is not logged in.
	ErrUnauthorized = errors.New("storage unauthorized")
)

// Error оборачивает ошибку адаптера с указанием операции и ключа.
type Error struct {
	Op  string
	Key string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is makes every *Error match ErrStorage.
func (e *Error) Is(target error) bool { return target == ErrStorage }

// Wrap returns nil for a nil err, otherwise an *Error.
func Wrap(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Key: key, Err: err}
}
