package model

import "time"

// Entry — значение синхронизируемого хранилища: один ключ пользователя.
type Entry struct {
	UserID int64  `gorm:"primaryKey;autoIncrement:false"`
	Key    string `gorm:"column:entry_key;primaryKey;size:255"`

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Value []byte `gorm:"not null"`

	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
