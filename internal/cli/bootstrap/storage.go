package bootstrap

import (
	"fmt"
	"path/filepath"

	"CheckNotes/internal/cli/repo"
	fsrepo "CheckNotes/internal/cli/repo/fs"
	"CheckNotes/internal/config"
	"CheckNotes/internal/note"
	"CheckNotes/internal/storage"
	"CheckNotes/internal/storage/fs"
	"CheckNotes/internal/storage/rediskv"
	"CheckNotes/internal/storage/remote"
	"CheckNotes/internal/storage/sqlite"

	"go.uber.org/zap"
)

// AuthStore возвращает файловое хранилище токена в каталоге данных клиента.
func AuthStore(cfg *config.Config) repo.AuthStore {
	return fsrepo.AuthFSStore{Dir: cfg.ClientDataDir}
}

// OpenStorage открывает бэкенд, выбранный в cfg.Storage, и возвращает (storage, cleanup, error).
// cleanup необходимо вызвать после окончания работы, чтобы закрыть соединения.
func OpenStorage(cfg *config.Config) (storage.Storage, func() error, error) {
	nop := func() error { return nil }
	switch cfg.Storage {
	case config.StorageFile:
		kv, err := fs.New(filepath.Join(cfg.ClientDataDir, "data"))
		if err != nil {
			return nil, nil, fmt.Errorf("open file storage: %w", err)
		}
		return kv, nop, nil
	case config.StorageRedis:
		kv := rediskv.NewFromAddr(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisPrefix)
		return kv, kv.Close, nil
	case config.StorageSync:
		return remote.New(cfg.ServerURL, AuthStore(cfg), nil), nop, nil
	case config.StorageLocal, "":
		kv, err := sqlite.Open(cfg.ClientDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open local db: %w", err)
		}
		if err := kv.Migrate(); err != nil {
			_ = kv.Close()
			return nil, nil, fmt.Errorf("migrate local db: %w", err)
		}
		return kv, kv.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}

// OpenNoteStore открывает хранилище и оборачивает его в note.Store с ключом из конфигурации.
func OpenNoteStore(cfg *config.Config, logger *zap.SugaredLogger) (*note.Store, func() error, error) {
	kv, done, err := OpenStorage(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Debugw("storage opened", "backend", cfg.Storage, "key", cfg.StorageKey)
	return note.NewStore(kv, note.WithKey(cfg.StorageKey), note.WithLogger(logger)), done, nil
}
