package commands

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"CheckNotes/internal/config"
	"CheckNotes/internal/note"
	"CheckNotes/internal/storage"

	"github.com/stretchr/testify/assert"
)

// fakeCmd позволяет управлять возвратом ошибок из Run
type fakeCmd struct {
	name, usage, desc string
	run               func(ctx context.Context, cfg *config.Config, args []string) error
}

func (f fakeCmd) Name() string        { return f.name }
func (f fakeCmd) Description() string { return f.desc }
func (f fakeCmd) Usage() string       { return f.usage }
func (f fakeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	return f.run(ctx, cfg, args)
}

func TestDispatcher_HelpAndUnknown(t *testing.T) {
	cfg := &config.Config{}

	code, out := run(t, cfg)
	assert.Equal(t, 2, code)
	assert.Contains(t, out, "CheckNotes CLI")
	for _, name := range []string{"list", "add", "edit", "rm", "check", "uncheck", "toggle", "login", "register"} {
		_, ok := Get(name)
		assert.True(t, ok, "command %q must be registered", name)
	}

	code, out = run(t, cfg, "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage:")

	code, out = run(t, cfg, "help", "add")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage: add <name> <description> [link]")

	code, out = run(t, cfg, "help", "nope")
	assert.Equal(t, 2, code)
	assert.Contains(t, out, "Unknown command: nope")

	code, _ = run(t, cfg, "no-such")
	assert.Equal(t, 2, code)
}

func TestDispatcher_RunPaths(t *testing.T) {
	cfg := &config.Config{}
	RegisterCmd(fakeCmd{name: "x", usage: "x", run: func(context.Context, *config.Config, []string) error { return nil }})
	RegisterCmd(fakeCmd{name: "u", usage: "u <arg>", run: func(context.Context, *config.Config, []string) error { return ErrUsage }})
	RegisterCmd(fakeCmd{name: "e", usage: "e", run: func(context.Context, *config.Config, []string) error { return fmt.Errorf("boom") }})
	t.Cleanup(func() {
		delete(registry, "x")
		delete(registry, "u")
		delete(registry, "e")
	})

	code, _ := run(t, cfg, "X")
	assert.Equal(t, 0, code, "command names are case-insensitive")

	code, out := run(t, cfg, "u")
	assert.Equal(t, 2, code)
	assert.Contains(t, out, "Usage: u <arg>")

	code, out = run(t, cfg, "e")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "e error: boom")
}

func TestDispatcher_DomainErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		want string
	}{
		{"validation", &note.ValidationError{Field: "link", Reason: "must be a valid https URL"}, ExitInvalidInput, "v: invalid link: must be a valid https URL"},
		{"not found", fmt.Errorf("%w: #9", note.ErrNotFound), ExitNotFound, "v: note not found: #9 (run list to see current positions)"},
		{"unauthorized", storage.Wrap("get", "checkNotes", storage.ErrUnauthorized), ExitUnauthorized, "run login first"},
		{"quota", storage.Wrap("set", "checkNotes", fmt.Errorf("%w: too big", storage.ErrQuotaExceeded)), ExitQuota, "exceed the sync storage quota"},
		{"storage", storage.Wrap("get", "checkNotes", fmt.Errorf("disk on fire")), ExitFailure, "v: storage unavailable: storage get \"checkNotes\": disk on fire"},
		{"wrapped usage", fmt.Errorf("parse: %w", ErrUsage), ExitUsage, "Usage: v <x>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.err
			RegisterCmd(fakeCmd{name: "v", usage: "v <x>", run: func(context.Context, *config.Config, []string) error { return err }})
			t.Cleanup(func() { delete(registry, "v") })

			code, out := run(t, &config.Config{}, "v")
			assert.Equal(t, tt.code, code)
			assert.Contains(t, out, tt.want)
		})
	}
}

// Синхронизируемое хранилище без входа: сервер отвечает 401, команда подсказывает login.
func TestDispatcher_SyncWithoutLogin(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer ts.Close()
	cfg := withTempConfig(t, config.StorageSync)
	cfg.ServerURL = ts.URL

	code, out := run(t, cfg, "list")
	assert.Equal(t, ExitUnauthorized, code)
	assert.Equal(t, "list: not logged in to the sync server, run login first\n", out)
}
