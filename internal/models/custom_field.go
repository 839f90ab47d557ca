package models

// FieldType — тип пользовательского поля формы записи.
type FieldType string

const (
	FieldText   FieldType = "text"
	FieldNumber FieldType = "number"
	FieldEmail  FieldType = "email"
	FieldPhone  FieldType = "phone"
	FieldDate   FieldType = "date"
)

// CustomField — дополнительное поле формы записи (марка авто, год выпуска и т.п.).
type CustomField struct {
	ID       string    `json:"id"`
	Label    string    `json:"label" validate:"required"`
	Type     FieldType `json:"type" validate:"required,oneof=text number email phone date"`
	Required bool      `json:"required"`
}

func (f CustomField) EntityID() string { return f.ID }

func (f CustomField) WithID(id string) CustomField {
	f.ID = id
	return f
}
