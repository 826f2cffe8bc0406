package dto

// ErrorResponse es el cuerpo de error uniforme de la API.
type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldIssue `json:"fields,omitempty"`
}

// FieldIssue detalla un campo rechazado por la validación estructural.
type FieldIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}
