package remote

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"CheckNotes/internal/storage"
)

// TokenLoader отдаёт сохранённый auth-токен клиента.
type TokenLoader interface {
	Load() (string, error)
}

// KVRemote — синхронизируемое хранилище: значения живут на сервере CheckNotes.
type KVRemote struct {
	baseURL string
	tokens  TokenLoader
	client  *http.Client
}

var _ storage.Storage = (*KVRemote)(nil)

// New создаёт клиента; если client == nil, используется http.DefaultClient.
func New(baseURL string, tokens TokenLoader, client *http.Client) *KVRemote {
	if client == nil {
		client = http.DefaultClient
	}
	return &KVRemote{baseURL: strings.TrimRight(baseURL, "/"), tokens: tokens, client: client}
}

func (s *KVRemote) endpoint(key string) string {
	return s.baseURL + "/api/storage/" + url.PathEscape(key)
}

func (s *KVRemote) do(ctx context.Context, method, key string, body []byte) (*http.Response, []byte, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, s.endpoint(key), rd)
	if err != nil {
		return nil, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.tokens != nil {
		if token, err := s.tokens.Load(); err == nil && token != "" {
			req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
		}
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	return resp, b, nil
}

func (s *KVRemote) Get(ctx context.Context, key string) ([]byte, bool, error) {
	resp, body, err := s.do(ctx, http.MethodGet, key, nil)
	if err != nil {
		return nil, false, storage.Wrap("get", key, err)
	}
	switch resp.StatusCode {
	case http.StatusOK:
		return body, true, nil
	case http.StatusNotFound:
		return nil, false, nil
	default:
		return nil, false, storage.Wrap("get", key, statusError(resp.StatusCode, body))
	}
}

func (s *KVRemote) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	resp, body, err := s.do(ctx, http.MethodPut, key, value)
	if err != nil {
		return storage.Wrap("set", key, err)
	}
	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	default:
		return storage.Wrap("set", key, statusError(resp.StatusCode, body))
	}
}

func statusError(code int, body []byte) error {
	msg := strings.TrimSpace(string(body))
	switch code {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: login required", storage.ErrUnauthorized)
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", storage.ErrQuotaExceeded, msg)
	default:
		return fmt.Errorf("server returned %d: %s", code, msg)
	}
}
