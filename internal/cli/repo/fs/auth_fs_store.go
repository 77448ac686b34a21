package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"CheckNotes/internal/cli/repo"
)

const (
	tokenFile = "auth_token"
	loginFile = "last_login"
)

// AuthFSStore хранит токен синхронизации и последний логин в каталоге данных клиента.
type AuthFSStore struct {
	Dir string
}

var _ repo.AuthStore = AuthFSStore{}

func (s AuthFSStore) path(name string) (string, error) {
	if s.Dir == "" {
		return "", errors.New("auth store: empty data dir")
	}
	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(s.Dir, name), nil
}

func (s AuthFSStore) write(name, value string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(value), 0o600)
}

// read возвращает содержимое файла без крайних пробелов; пустой файл считается ошибкой.
func (s AuthFSStore) read(name string) (string, error) {
	p, err := s.path(name)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	v := strings.TrimSpace(string(b))
	if v == "" {
		return "", errors.New("empty " + name + " file")
	}
	return v, nil
}

// Save сохраняет auth‑токен в файл.
func (s AuthFSStore) Save(token string) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("empty token")
	}
	return s.write(tokenFile, token)
}

// Load читает auth‑токен из файла.
func (s AuthFSStore) Load() (string, error) { return s.read(tokenFile) }

func (s AuthFSStore) SaveLogin(login string) error {
	if strings.TrimSpace(login) == "" {
		return errors.New("empty login")
	}
	return s.write(loginFile, login)
}

func (s AuthFSStore) LoadLogin() (string, error) { return s.read(loginFile) }
