// Package guard решает, можно ли открыть путь панели при текущем состоянии
// сессии и подписки. Решение не зависит от предыдущих вызовов.
package guard

import (
	"strings"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/models"
)

// Пути панели.
const (
	PathLogin        = "/login"
	PathRegister     = "/register"
	PathSubscription = "/subscription"
	PathRoot         = "/"
	PathDashboard    = "/dashboard"
	PathReservations = "/reservations"
	PathServices     = "/services"
	PathPayments     = "/payments"
	PathCustomFields = "/custom-fields"
	PathSettings     = "/settings"
)

// Причины решения, используются в метриках и логах.
const (
	ReasonAllowed         = "allowed"
	ReasonUnknownPath     = "unknown_path"
	ReasonAuthenticated   = "authenticated"
	ReasonUnauthenticated = "unauthenticated"
	ReasonNoPlan          = "no_plan"
)

type route struct {
	authOnly  bool
	needsPlan bool
}

var routes = map[string]route{
	PathLogin:        {authOnly: true},
	PathRegister:     {authOnly: true},
	PathSubscription: {},
	PathRoot:         {},
	PathDashboard:    {},
	PathReservations: {needsPlan: true},
	PathServices:     {needsPlan: true},
	PathPayments:     {needsPlan: true},
	PathCustomFields: {needsPlan: true},
	PathSettings:     {needsPlan: true},
}

// Decision — результат проверки. Redirect пуст, если переход разрешён.
type Decision struct {
	Allow    bool   `json:"allow"`
	Redirect string `json:"redirect,omitempty"`
	Reason   string `json:"reason"`
}

func allow() Decision { return Decision{Allow: true, Reason: ReasonAllowed} }

func redirect(target, reason string) Decision {
	return Decision{Redirect: target, Reason: reason}
}

// Decide применяет правила по порядку: неизвестный путь, страницы входа для
// вошедших, закрытые страницы для гостей, страницы, требующие тариф.
func Decide(path string, session models.SessionState, sub models.SubscriptionState) Decision {
	r, ok := routes[Normalize(path)]
	if !ok {
		return redirect(PathRoot, ReasonUnknownPath)
	}
	authenticated := session.Normalize().IsAuthenticated
	if r.authOnly {
		if authenticated {
			return redirect(PathRoot, ReasonAuthenticated)
		}
		return allow()
	}
	if !authenticated {
		return redirect(PathLogin, ReasonUnauthenticated)
	}
	if r.needsPlan && !sub.HasPlan() {
		return redirect(PathSubscription, ReasonNoPlan)
	}
	return allow()
}

// Known сообщает, есть ли такой путь в панели.
func Known(path string) bool {
	_, ok := routes[Normalize(path)]
	return ok
}

// Normalize отрезает query и fragment и завершающие слэши.
// Пустой путь считается корнем.
func Normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimRight(strings.TrimSpace(path), "/")
	if path == "" {
		return PathRoot
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}
