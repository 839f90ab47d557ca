package models

// WhiteLabelConfig — брендирование панели.
type WhiteLabelConfig struct {
	Logo           string   `json:"logo" validate:"required,url"`
	PrimaryColor   string   `json:"primaryColor" validate:"required,hexcolor,len=7"`
	CompanyName    string   `json:"companyName" validate:"required"`
	CustomFieldIDs []string `json:"customFields"`
}

// EmailSettings — шаблон письма-подтверждения записи.
// Поддерживаются подстановки {customer_name}, {service_name}, {date}, {time}.
type EmailSettings struct {
	ConfirmationTemplate string `json:"confirmationTemplate"`
}

// DayHours — часы работы в один день недели.
type DayHours struct {
	Day    string `json:"day" validate:"required"`
	Open   string `json:"open" validate:"omitempty,datetime=15:04"`
	Close  string `json:"close" validate:"omitempty,datetime=15:04"`
	Closed bool   `json:"closed"`
}

// BusinessHours — расписание работы с понедельника по воскресенье.
type BusinessHours struct {
	Days []DayHours `json:"days" validate:"len=7,dive"`
}
