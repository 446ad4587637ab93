package apperr

type Kind string

type AppError struct {
	Kind      Kind
	PublicMsg string            // safe to show to the visitor
	Fields    map[string]string // per-field form messages, optional
	Err       error             // internal cause, logged only
}
