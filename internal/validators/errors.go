package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrCheckFailed     = errors.New("validation check could not be completed")
)

// FieldError is a single rejected form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the ordered set of field errors produced by one validation pass.
// It is returned as an error value by [RuleSet.Validate].
type Errors []FieldError

func (e Errors) Error() string {
	return "validation failed: " + strings.Join(e.Messages(), "; ")
}

// Messages returns the messages in form order.
func (e Errors) Messages() []string {
	messages := make([]string, 0, len(e))
	for _, fe := range e {
		messages = append(messages, fe.Message)
	}
	return messages
}

// Get returns the message recorded for field, if any.
func (e Errors) Get(field string) (string, bool) {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message, true
		}
	}
	return "", false
}

// AsErrors extracts validation errors from err.
func AsErrors(err error) (Errors, bool) {
	var errs Errors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}
