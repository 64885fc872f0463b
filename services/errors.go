package services

import "errors"

// The service layer reports definitive request-level outcomes through four
// error kinds. Handlers translate them to HTTP statuses; nothing here is
// retried internally.

// FieldError reports a client-supplied value violating a model invariant,
// keyed by the offending field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	What string
}

func (e *NotFoundError) Error() string {
	return e.What + " not found"
}

// ConflictError reports a membership row that already exists.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ForbiddenError reports a caller lacking ownership of the target.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// ErrorResponse maps a service error to an HTTP status and response body.
// FieldErrors come back field-keyed, the rest as a flat message.
func ErrorResponse(err error) (int, any) {
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return 400, map[string]any{"errors": map[string]string{fieldErr.Field: fieldErr.Message}}
	}
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return 404, map[string]any{"error": notFound.Error()}
	}
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return 409, map[string]any{"error": conflict.Message}
	}
	var forbidden *ForbiddenError
	if errors.As(err, &forbidden) {
		return 403, map[string]any{"error": forbidden.Message}
	}
	return 500, map[string]any{"error": "Internal server error"}
}
