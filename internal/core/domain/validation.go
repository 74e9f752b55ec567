package domain

// FieldViolation is one field-level validation failure. Violation lists
// are ordered deterministically for a given input.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
