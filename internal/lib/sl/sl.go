// Package sl содержит атрибуты slog, которые повторяются в логах хранилищ,
// middleware и обработчиков.
package sl

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
)

// Err возвращает атрибут "error" с текстом ошибки. Nil даёт пустое значение,
// чтобы лог не падал на ветке без ошибки.
//
// Пример:
//
//	log.Error("failed to do something", sl.Err(err))
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// Request возвращает атрибут "request_id", который назначил chi middleware.RequestID.
func Request(r *http.Request) slog.Attr {
	return slog.String("request_id", middleware.GetReqID(r.Context()))
}
