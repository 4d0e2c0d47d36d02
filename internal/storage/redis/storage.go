package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkravtsov/shopfront/internal/ports"
	"github.com/redis/go-redis/v9"
)

// Проверка, что Storage удовлетворяет порту CartStorage.
var _ ports.CartStorage = (*Storage)(nil)

// Storage — блоб-хранилище корзины на Redis для stateless-развёртывания
// шлюза. Контракт тот же, что у файлового бэкенда: один сериализованный
// блоб под ключом; это слой живучести, а не база данных.
type Storage struct {
	client *redis.Client
	prefix string
}

// NewStorage — конструктор с ping для fail-fast.
func NewStorage(ctx context.Context, addr, password string, db int, prefix string) (*Storage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Storage{client: client, prefix: prefix}, nil
}

func (s *Storage) key(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

// Get — вернуть блоб; redis.Nil трактуется как отсутствие ключа.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	blob, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get %q: %w", key, err)
	}
	return blob, true, nil
}

// Set — перезапись блоба без TTL: корзина живёт до явной очистки.
func (s *Storage) Set(ctx context.Context, key string, blob []byte) error {
	if err := s.client.Set(ctx, s.key(key), blob, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

// Remove — удалить блоб; отсутствие ключа не ошибка (DEL идемпотентен).
func (s *Storage) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}

// Close — закрыть соединения.
func (s *Storage) Close() error { return s.client.Close() }
