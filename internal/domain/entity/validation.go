package entity

// FieldError is one structured input validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// Messages reported for the email field.
const (
	MsgInvalidEmail = "Please enter a valid email."
	MsgEmailTaken   = "Email address already exists!"
)
