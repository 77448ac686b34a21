package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap("get", "k", nil))

	err := Wrap("set", "checkNotes", ErrQuotaExceeded)
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, ErrQuotaExceeded)
	assert.Equal(t, `storage set "checkNotes": storage quota exceeded`, err.Error())

	var se *Error
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, "set", se.Op)
	assert.Equal(t, "checkNotes", se.Key)
}
