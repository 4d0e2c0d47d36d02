package api

import "fmt"

// Error — ошибка вызова внешнего бэкенда: HTTP-статус плюс сообщение,
// которое бэкенд прислал в теле ответа ({"message": ...}), если прислал.
// Ошибки 401-класса здесь не обрабатываются — инвалидация сессии лежит
// на вызывающем слое.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend: %d", e.StatusCode)
}

// Unauthorized — признак 401-класса для верхнего слоя.
func (e *Error) Unauthorized() bool { return e.StatusCode == 401 }
