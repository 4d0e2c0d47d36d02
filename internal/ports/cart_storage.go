package ports

import "context"

// CartStorage — долговременное локальное key-value хранилище корзины.
// Контракт узкий: один сериализованный блоб под фиксированным ключом.
// Схема блоба не версионируется — читающая сторона обязана деградировать
// до пустой корзины, если содержимое не разбирается.
type CartStorage interface {
	// Get — вернуть блоб по ключу; (nil, false, nil) при отсутствии.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set — сохранить/перезаписать блоб по ключу.
	Set(ctx context.Context, key string, blob []byte) error

	// Remove — удалить блоб; отсутствие ключа не считается ошибкой.
	Remove(ctx context.Context, key string) error
}
