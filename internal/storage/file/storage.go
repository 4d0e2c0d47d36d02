package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dkravtsov/shopfront/internal/ports"
)

// Проверка, что Storage удовлетворяет порту CartStorage.
var _ ports.CartStorage = (*Storage)(nil)

// Storage — файловое key-value хранилище: один ключ — один файл в каталоге.
// Аналог localStorage браузера для серверного процесса: небольшие блобы,
// запись атомарна (tmp + rename), чтобы падение процесса не оставило
// полузаписанный блоб.
type Storage struct {
	dir string
}

// NewStorage — конструктор; каталог создаётся при необходимости.
func NewStorage(dir string) (*Storage, error) {
	if dir == "" {
		return nil, errors.New("storage dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Storage{dir: dir}, nil
}

func (s *Storage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get — вернуть блоб; (nil, false, nil) при отсутствии файла.
func (s *Storage) Get(_ context.Context, key string) ([]byte, bool, error) {
	blob, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %q: %w", key, err)
	}
	return blob, true, nil
}

// Set — атомарная перезапись блоба.
func (s *Storage) Set(_ context.Context, key string, blob []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %q: %w", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(blob); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close %q: %w", key, err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename %q: %w", key, err)
	}
	return nil
}

// Remove — удалить блоб; отсутствие файла не ошибка.
func (s *Storage) Remove(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}
