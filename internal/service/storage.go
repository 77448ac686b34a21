package service

import (
	"CheckNotes/internal/model"
	"CheckNotes/internal/repo"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	ErrQuotaExceeded = errors.New("value exceeds quota")
	ErrInvalidValue  = errors.New("value must be valid JSON")
	ErrInvalidKey    = errors.New("invalid key")
)

// maxKeyLen совпадает с размером колонки entry_key.
const maxKeyLen = 255

// StorageService — синхронизируемое key-value хранилище: одно JSON-значение на ключ пользователя.
type StorageService struct {
	repo   repo.EntryRepository
	quota  int
	logger *zap.SugaredLogger
}

func NewStorageService(r repo.EntryRepository, quota int, logger *zap.SugaredLogger) *StorageService {
	return &StorageService{repo: r, quota: quota, logger: logger}
}

// Get возвращает значение; ok=false, если ключа нет.
func (s *StorageService) Get(ctx context.Context, userID int64, key string) ([]byte, bool, error) {
	if err := checkKey(key); err != nil {
		return nil, false, err
	}
	e, err := s.repo.Get(ctx, userID, key)
	if err != nil {
		return nil, false, err
	}
	if e == nil {
		return nil, false, nil
	}
	return e.Value, true, nil
}

// Put заменяет значение целиком. Значение больше квоты или не-JSON отклоняется без записи.
func (s *StorageService) Put(ctx context.Context, userID int64, key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if s.quota > 0 && len(value) > s.quota {
		s.logger.Infow("storage: quota exceeded", "user_id", userID, "key", key, "size", len(value), "quota", s.quota)
		return fmt.Errorf("%w: %d > %d bytes", ErrQuotaExceeded, len(value), s.quota)
	}
	if !json.Valid(value) {
		return ErrInvalidValue
	}
	if err := s.repo.Put(ctx, &model.Entry{UserID: userID, Key: key, Value: value}); err != nil {
		return err
	}
	s.logger.Debugw("storage: value stored", "user_id", userID, "key", key, "size", len(value))
	return nil
}

// Delete удаляет ключ; отсутствие ключа ошибкой не считается.
func (s *StorageService) Delete(ctx context.Context, userID int64, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	_, err := s.repo.Delete(ctx, userID, key)
	return err
}

func checkKey(key string) error {
	if key == "" || len(key) > maxKeyLen {
		return ErrInvalidKey
	}
	return nil
}
