// Package validation собирает валидатор входных данных, общий для
// обработчиков и хранилищ настроек.
package validation

import (
	"time"

	"github.com/go-playground/validator"
)

// New возвращает валидатор с дополнительными тегами:
//
//	datetime=<layout> — строка разбирается time.Parse с этим layout.
func New() *validator.Validate {
	v := validator.New()
	// теги регистрируются один раз, ошибка возможна только при пустом имени
	_ = v.RegisterValidation("datetime", isDatetime)
	return v
}

func isDatetime(fl validator.FieldLevel) bool {
	layout := fl.Param()
	if layout == "" {
		return false
	}
	_, err := time.Parse(layout, fl.Field().String())
	return err == nil
}
