package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"CheckNotes/internal/config"
	"CheckNotes/internal/note"
	"CheckNotes/internal/storage/fs"
	"CheckNotes/internal/storage/rediskv"
	"CheckNotes/internal/storage/remote"
	"CheckNotes/internal/storage/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// tempConfig — клиентская конфигурация с каталогами во временной папке.
func tempConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Storage:       backend,
		StorageKey:    "checkNotes",
		ClientDataDir: dir,
		ClientDBPath:  filepath.Join(dir, "db", "notes.sqlite"),
		ServerURL:     "http://localhost:8081",
		RedisAddr:     "localhost:6379",
		RedisPrefix:   "checknotes:",
	}
}

func TestOpenStorage_Backends(t *testing.T) {
	tests := []struct {
		backend string
		check   func(t *testing.T, v any)
	}{
		{config.StorageLocal, func(t *testing.T, v any) { assert.IsType(t, &sqlite.KVSQLite{}, v) }},
		{config.StorageFile, func(t *testing.T, v any) { assert.IsType(t, &fs.KVFS{}, v) }},
		{config.StorageRedis, func(t *testing.T, v any) { assert.IsType(t, &rediskv.KVRedis{}, v) }},
		{config.StorageSync, func(t *testing.T, v any) { assert.IsType(t, &remote.KVRemote{}, v) }},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			kv, done, err := OpenStorage(tempConfig(t, tt.backend))
			require.NoError(t, err)
			tt.check(t, kv)
			assert.NoError(t, done())
		})
	}
}

func TestOpenStorage_Unknown(t *testing.T) {
	_, _, err := OpenStorage(tempConfig(t, "cloud"))
	assert.Error(t, err)
}

// Ошибка открытия: путь к базе лежит «внутри» обычного файла.
func TestOpenStorage_LocalFailsWhenParentIsFile(t *testing.T) {
	cfg := tempConfig(t, config.StorageLocal)
	blocker := filepath.Join(cfg.ClientDataDir, "not_dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	cfg.ClientDBPath = filepath.Join(blocker, "notes.sqlite")

	_, _, err := OpenStorage(cfg)
	assert.Error(t, err)
}

func TestOpenNoteStore_PersistsAcrossOpens(t *testing.T) {
	cfg := tempConfig(t, config.StorageLocal)
	ctx := context.Background()

	st, done, err := OpenNoteStore(cfg, zap.NewNop().Sugar())
	require.NoError(t, err)
	_, err = st.Add(ctx, note.Input{Name: "n", Description: "d"})
	require.NoError(t, err)
	require.NoError(t, done())

	st, done, err = OpenNoteStore(cfg, zap.NewNop().Sugar())
	require.NoError(t, err)
	defer done()
	list, err := st.Load(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "n", list[0].Name)
	assert.Equal(t, "checkNotes", st.Key())
}

func TestAuthStore_UsesDataDir(t *testing.T) {
	cfg := tempConfig(t, config.StorageSync)
	require.NoError(t, AuthStore(cfg).Save("tok"))
	_, err := os.Stat(filepath.Join(cfg.ClientDataDir, "auth_token"))
	assert.NoError(t, err)
}
