package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"CheckNotes/internal/cli/api"
	"CheckNotes/internal/cli/repo"
)

var (
	ErrLoginTaken         = errors.New("login already in use")
	ErrInvalidCredentials = errors.New("invalid login or password")
)

// AuthService описывает юзкейс-уровень аутентификации для CLI.
type AuthService interface {
	Register(ctx context.Context, login, password string) error
	Login(ctx context.Context, login, password string) error
	// CurrentUser возвращает логин текущего пользователя, если он установлен.
	CurrentUser() (string, error)
}

type credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// AuthHTTP авторизуется на сервере синхронизации и запоминает токен в store.
type AuthHTTP struct {
	baseURL string
	store   repo.AuthStore
}

var _ AuthService = (*AuthHTTP)(nil)

func NewAuthHTTP(baseURL string, store repo.AuthStore) *AuthHTTP {
	return &AuthHTTP{baseURL: strings.TrimRight(baseURL, "/"), store: store}
}

func (a *AuthHTTP) Register(ctx context.Context, login, password string) error {
	return a.authorize(ctx, "/api/user/register", login, password)
}

func (a *AuthHTTP) Login(ctx context.Context, login, password string) error {
	return a.authorize(ctx, "/api/user/login", login, password)
}

func (a *AuthHTTP) CurrentUser() (string, error) {
	return a.store.LoadLogin()
}

func (a *AuthHTTP) authorize(ctx context.Context, path, login, password string) error {
	resp, body, err := api.PostJSON(ctx, a.baseURL+path, credentials{Login: login, Password: password}, "")
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusConflict:
		return ErrLoginTaken
	case http.StatusUnauthorized:
		return ErrInvalidCredentials
	default:
		return fmt.Errorf("server error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := api.PersistAuthFromResponse(resp, a.store); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	if err := a.store.SaveLogin(login); err != nil {
		return fmt.Errorf("saving login: %w", err)
	}
	return nil
}
