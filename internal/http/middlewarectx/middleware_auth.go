package middlewarectx

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/response"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/lib/jwt"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/lib/sl"
)

// TokenParser проверяет bearer-токен.
type TokenParser interface {
	ParseToken(tokenStr string) (*jwt.CustomClaims, error)
}

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке Authorization.
//
// Токен должен быть выпущен для личности текущей сессии: после выхода или
// входа под другой компанией старые токены перестают подходить. Личность
// кладётся в контекст запроса.
func JWTMiddleware(tokens TokenParser, sessions SessionSource, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"
			log := log.With(
				slog.String("op", op),
				sl.Request(r),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Redirect("missing or invalid authorization header", "/login"))
				return
			}

			claims, err := tokens.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Redirect("invalid or expired token", "/login"))
				return
			}

			state := sessions.State()
			if state.CurrentUser == nil || state.CurrentUser.ID != claims.UserID() {
				log.Error("token does not belong to current session", slog.String("subject", claims.UserID()))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Redirect("session is no longer active", "/login"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), *state.CurrentUser)))
		})
	}
}
