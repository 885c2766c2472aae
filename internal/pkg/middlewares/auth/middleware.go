package auth

import (
	"context"
	"net/http"
	"strconv"
)

// Роли приходят из шлюза в заголовках, сервис им доверяет: аутентификация
// живёт на периметре.
const (
	RoleAdmin      = "admin"
	RoleDispatcher = "dispatcher"
	RoleMaster     = "master"
)

const (
	headerRole   = "X-User-Role"
	headerUserID = "X-User-ID"
)

type ctxKey struct{}

type Caller struct {
	Role   string
	UserID int64
}

// Middleware кладёт Caller в контекст запроса. Запросы без заголовков
// пропускаются дальше: решение принимает Require на конкретном роуте.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := r.Header.Get(headerRole)
			if role == "" {
				next.ServeHTTP(w, r)
				return
			}

			caller := Caller{Role: role}
			if userID, err := strconv.ParseInt(r.Header.Get(headerUserID), 10, 64); err == nil {
				caller.UserID = userID
			}

			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
		})
	}
}

func WithCaller(ctx context.Context, caller Caller) context.Context {
	return context.WithValue(ctx, ctxKey{}, caller)
}

func CallerFromContext(ctx context.Context) (Caller, bool) {
	caller, ok := ctx.Value(ctxKey{}).(Caller)
	return caller, ok
}

// Require отклоняет запрос, если роль вызывающего не входит в список.
func Require(handler http.Handler, roles ...string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := CallerFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		for _, role := range roles {
			if caller.Role == role {
				handler.ServeHTTP(w, r)
				return
			}
		}

		w.WriteHeader(http.StatusForbidden)
	})
}

// CanActForMaster мастер распоряжается только своим расписанием, куратор
// и админ — любым.
func CanActForMaster(caller Caller, masterID int64) bool {
	switch caller.Role {
	case RoleAdmin, RoleDispatcher:
		return true
	case RoleMaster:
		return caller.UserID == masterID
	}
	return false
}
