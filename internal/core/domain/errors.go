package domain

// ValidationError marks a request rejected before any storage call.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// ErrValidation builds a ValidationError from a message.
func ErrValidation(msg string) error { return ValidationError(msg) }
