package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"CheckNotes/internal/config"
)

// withTempConfig возвращает конфигурацию клиента, у которой все артефакты
// (токен/логин/база/файлы) создаются во временном каталоге.
func withTempConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Storage:       backend,
		StorageKey:    "checkNotes",
		ClientDataDir: dir,
		ClientDBPath:  filepath.Join(dir, "notes.sqlite"),
		ServerURL:     "http://127.0.0.1:1",
	}
}

// перехват вывода на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// run выполняет команду через Dispatch и возвращает код выхода и вывод.
func run(t *testing.T, cfg *config.Config, args ...string) (int, string) {
	t.Helper()
	var code int
	out := withStdoutCapture(t, func() { code = Dispatch(context.Background(), cfg, args) })
	return code, out
}
