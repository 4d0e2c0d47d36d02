package httpx

import (
	"strings"

	"github.com/dkravtsov/shopfront/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// AuthTokenMiddleware — снимает Bearer-токен с входящего запроса и кладёт
// его в контекст, чтобы клиент бэкенда переслал его дальше. Проверка и
// инвалидация сессии — не здесь: 401 от бэкенда уходит клиенту как есть.
func AuthTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok && token != "" {
			ctx := ctxmeta.WithAuthToken(c.Request.Context(), token)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}
