// Package middleware содержит HTTP middleware роутера:
// аутентификацию по доверенным заголовкам и сбор метрик запросов.
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/api/handlers"
)

type contextKey string

const (
	userIDKey  contextKey = "userID"
	isAdminKey contextKey = "isAdmin"

	// HeaderUserID заголовок с ID аутентифицированного пользователя
	// Проставляется доверенным edge-прокси, сервис его не проверяет
	HeaderUserID = "X-User-ID"

	// HeaderAdmin заголовок признака администратора
	HeaderAdmin = "X-Admin"
)

// Auth требует наличия корректного X-User-ID и кладет его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(HeaderUserID)
		if userIDStr == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "требуется заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)

		if r.Header.Get(HeaderAdmin) == "true" {
			ctx = context.WithValue(ctx, isAdminKey, true)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID возвращает ID пользователя из контекста запроса
// Второе значение false, если запрос прошел мимо Auth middleware
func UserID(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value(userIDKey).(int64)
	return userID, ok
}

// OptionalUserID возвращает ID пользователя, если запрос аутентифицирован
// Работает и на маршрутах без Auth middleware: гостевые запросы дают nil
func OptionalUserID(r *http.Request) *int64 {
	if userID, ok := UserID(r); ok {
		return &userID
	}

	userIDStr := r.Header.Get(HeaderUserID)
	if userIDStr == "" {
		return nil
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil || userID <= 0 {
		return nil
	}
	return &userID
}

// IsAdmin возвращает true, если запрос помечен как административный
func IsAdmin(r *http.Request) bool {
	isAdmin, ok := r.Context().Value(isAdminKey).(bool)
	return ok && isAdmin
}
