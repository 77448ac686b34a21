package rediskv

import (
	"context"
	"errors"

	"CheckNotes/internal/storage"

	"github.com/go-redis/redis/v8"
)

// KVRedis хранит список заметок в Redis под ключом prefix+key, без TTL.
type KVRedis struct {
	client *redis.Client
	prefix string
}

var _ storage.Storage = (*KVRedis)(nil)

func New(client *redis.Client, prefix string) *KVRedis {
	return &KVRedis{client: client, prefix: prefix}
}

// NewFromAddr connects a client with the given address and credentials.
func NewFromAddr(addr, password string, db int, prefix string) *KVRedis {
	return New(redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}), prefix)
}

func (s *KVRedis) Close() error {
	return s.client.Close()
}

func (s *KVRedis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	cmd := s.client.Get(ctx, s.prefix+key)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, storage.Wrap("get", key, err)
	}
	return []byte(cmd.Val()), true, nil
}

func (s *KVRedis) Set(ctx context.Context, key string, value []byte) error {
	return storage.Wrap("set", key, s.client.Set(ctx, s.prefix+key, string(value), 0).Err())
}
