package repo

import (
	"CheckNotes/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrLoginExists — пользователь с таким логином уже есть (нарушен уникальный индекс).
var ErrLoginExists = errors.New("login already exists")

// UserRepository — доступ к пользователям.
type UserRepository interface {
	// CreateUser возвращает ErrLoginExists, если логин занят.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	// GetUserByLogin возвращает gorm.ErrRecordNotFound, если пользователя нет.
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	err := r.db.WithContext(ctx).Create(user).Error
	if err == nil {
		return user, nil
	}
	// драйверы по-разному сообщают о нарушении уникальности, поэтому проверяем по факту
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrLoginExists
	}
	if _, lookupErr := r.GetUserByLogin(ctx, user.Login); lookupErr == nil {
		return nil, ErrLoginExists
	}
	return nil, err
}

func (r *userRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("login = ?", login).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
