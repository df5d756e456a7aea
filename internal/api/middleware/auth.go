package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/perfectdrive/rental-service/internal/api/handlers"
)

type adminIDCtxKey struct{}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth проверяет наличие заголовка X-Admin-ID на защищенных маршрутах
// Сама аутентификация выполняется на API-шлюзе; здесь доверяем заголовку
// и прокидываем ID администратора в контекст запроса.
func AdminAuth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			adminIDStr := r.Header.Get("X-Admin-ID")
			if adminIDStr == "" {
				logger.Warn("%s %s - Missing X-Admin-ID header", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "missing X-Admin-ID header")
				return
			}

			adminID, err := strconv.ParseInt(adminIDStr, 10, 64)
			if err != nil {
				logger.Warn("%s %s - Invalid X-Admin-ID header: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, "invalid X-Admin-ID header")
				return
			}

			ctx := context.WithValue(r.Context(), adminIDCtxKey{}, adminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminIDFromContext возвращает ID администратора из контекста запроса
func AdminIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(adminIDCtxKey{}).(int64)
	return id, ok
}
