// Package middlewarectx содержит HTTP middleware панели: проверку bearer-токена
// сессии, route guard для ресурсов API и ограничение частоты входа.
package middlewarectx

import (
	"context"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// IdentityKey — ключ для личности сессии в контексте.
const IdentityKey Key = "identity"

// SessionSource отдаёт текущее состояние сессии.
type SessionSource interface {
	State() models.SessionState
}

// SubscriptionSource отдаёт текущее состояние подписки.
type SubscriptionSource interface {
	State() models.SubscriptionState
}

// WithIdentity кладёт личность в контекст.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

// IdentityFrom достаёт личность, положенную JWTMiddleware.
func IdentityFrom(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(models.Identity)
	return identity, ok && identity.ID != ""
}
