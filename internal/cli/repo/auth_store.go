package repo

// TokenStore описывает абстракцию хранилища auth-токена на клиенте.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
}

// UserContextStore хранит логин последнего вошедшего пользователя.
type UserContextStore interface {
	SaveLogin(login string) error
	LoadLogin() (string, error)
}

// AuthStore — всё, что CLI запоминает после register/login.
type AuthStore interface {
	TokenStore
	UserContextStore
}
