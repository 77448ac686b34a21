package note

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound matches every *NotFoundError.
	ErrNotFound = errors.New("note not found")
)

// ValidationError сообщает, какое поле ввода не прошло проверку.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError — индекс (или id) больше не указывает на существующую заметку.
type NotFoundError struct {
	Index int
	ID    string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("note with id %q not found", e.ID)
	}
	return fmt.Sprintf("note at index %d not found", e.Index)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
