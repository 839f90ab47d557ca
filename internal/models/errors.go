// Package models содержит доменные структуры панели управления автосервисом
// и общие ошибки, которыми обмениваются хранилища, сервисы и HTTP-слой.
package models

import "errors"

var (
	// ErrInvalidCredentials — неверная пара email/пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrRegistration — сервис регистрации отклонил данные (например, email занят).
	ErrRegistration = errors.New("registration rejected")
	// ErrUnknownPlan — тариф отсутствует в каталоге.
	ErrUnknownPlan = errors.New("unknown plan")
	// ErrNotFound — запись с таким id отсутствует в коллекции.
	ErrNotFound = errors.New("not found")
	// ErrInvalid — данные не прошли проверку.
	ErrInvalid = errors.New("invalid input")
	// ErrPayment — платёжный провайдер не подтвердил оплату.
	ErrPayment = errors.New("payment failed")
	// ErrSuperseded — переход сессии завершился после более нового перехода
	// и не был применён.
	ErrSuperseded = errors.New("superseded by a newer session transition")
)
