package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gooffice/GoOffice-ShiftService/internal/api/handlers"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userNameKey contextKey = "userName"

	headerUserID   = "X-User-ID"
	headerUserName = "X-User-Name"
	headerUserRole = "X-User-Role"

	roleAdmin = "admin"
)

// Auth извлекает идентификацию пользователя из заголовков шлюза.
// Запросы без валидных заголовков получают 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get(headerUserID)
		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "требуется аутентификация")
			return
		}

		userName := r.Header.Get(headerUserName)
		if userName == "" {
			handlers.RespondUnauthorized(w, "требуется аутентификация")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userNameKey, userName)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly пропускает только запросы с ролью администратора
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(headerUserRole) != roleAdmin {
			handlers.RespondForbidden(w, "недостаточно прав")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserID возвращает идентификатор пользователя из контекста запроса
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// UserName возвращает имя пользователя из контекста запроса
func UserName(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(userNameKey).(string)
	return name, ok
}
