package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
)

// UserIDHeader заголовок с ID пользователя, проставляется API gateway
const UserIDHeader = "X-User-ID"

type userIDKey struct{}

// Auth требует заголовок X-User-ID с корректным UUID и кладёт его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := handlers.ParseUUID(raw)
		if err != nil {
			handlers.RespondUnauthorized(w, "некорректный X-User-ID")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// WithUserID кладёт ID пользователя в контекст
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserID достаёт ID пользователя из контекста
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return userID, ok
}
