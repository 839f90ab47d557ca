package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/guard"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/response"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/lib/sl"
)

// GuardObserver получает путь и причину каждого решения.
type GuardObserver func(path, reason string)

// RedirectStatus возвращает HTTP-статус для редиректа guard:
// 401 на вход, 402 на выбор тарифа, 403 в остальных случаях.
func RedirectStatus(target string) int {
	switch target {
	case guard.PathLogin:
		return http.StatusUnauthorized
	case guard.PathSubscription:
		return http.StatusPaymentRequired
	default:
		return http.StatusForbidden
	}
}

// GuardMiddleware применяет route guard к ресурсу API, открываемому как
// страница path панели.
func GuardMiddleware(log *slog.Logger, path string, sessions SessionSource, subs SubscriptionSource, observe GuardObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.GuardMiddleware"

			decision := guard.Decide(path, sessions.State(), subs.State())
			if observe != nil {
				observe(path, decision.Reason)
			}
			if !decision.Allow {
				log.Info("navigation redirected",
					slog.String("op", op),
					sl.Request(r),
					slog.String("path", path),
					slog.String("redirect", decision.Redirect),
					slog.String("reason", decision.Reason),
				)
				render.Status(r, RedirectStatus(decision.Redirect))
				render.JSON(w, r, response.Redirect("access denied: "+decision.Reason, decision.Redirect))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
