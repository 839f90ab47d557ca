package models

// Identity — аутентифицированная компания-пользователь панели.
// Id неизменяем, email и название компании меняются только повторной регистрацией.
type Identity struct {
	ID                 string  `json:"id"`
	Email              string  `json:"email"`
	CompanyName        string  `json:"companyName"`
	SubscriptionPlanID *string `json:"subscription"`
}

// SessionState — снимок состояния сессии.
// IsAuthenticated истинно тогда и только тогда, когда задан CurrentUser.
type SessionState struct {
	CurrentUser     *Identity `json:"user"`
	IsAuthenticated bool      `json:"isAuthenticated"`
}

// Normalize восстанавливает инвариант IsAuthenticated == (CurrentUser != nil).
func (s SessionState) Normalize() SessionState {
	s.IsAuthenticated = s.CurrentUser != nil
	return s
}
