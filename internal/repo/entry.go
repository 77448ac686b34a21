package repo

import (
	"CheckNotes/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntryRepository — значения хранилища пользователей.
type EntryRepository interface {
	// Get возвращает (nil, nil), если ключа нет.
	Get(ctx context.Context, userID int64, key string) (*model.Entry, error)
	// Put вставляет или полностью заменяет значение.
	Put(ctx context.Context, entry *model.Entry) error
	// Delete возвращает deleted=false, если ключа не было.
	Delete(ctx context.Context, userID int64, key string) (bool, error)
}

type entryRepo struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepo{db: db}
}

func (r *entryRepo) Get(ctx context.Context, userID int64, key string) (*model.Entry, error) {
	var e model.Entry
	err := r.db.WithContext(ctx).Where("user_id = ? AND entry_key = ?", userID, key).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *entryRepo) Put(ctx context.Context, entry *model.Entry) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(entry).Error
}

func (r *entryRepo) Delete(ctx context.Context, userID int64, key string) (bool, error) {
	tx := r.db.WithContext(ctx).Where("user_id = ? AND entry_key = ?", userID, key).Delete(&model.Entry{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
