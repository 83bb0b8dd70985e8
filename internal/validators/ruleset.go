package validators

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
)

// RuleSet is the ordered list of field chains for one form submission.
type RuleSet struct {
	name   string
	fields []*Field
}

// NewRuleSet builds a RuleSet named after the form it guards.
func NewRuleSet(name string, fields ...*Field) *RuleSet {
	return &RuleSet{name: name, fields: fields}
}

func (s *RuleSet) Name() string {
	return s.name
}

// Validate runs every field chain against the submitted values, which may be
// url.Values or an *http.Request whose form has been parsed. Values are
// replaced with their sanitized form in place.
//
// When fields are given only those chains run. Returns:
//   - nil if every field passed.
//   - [Errors] listing the rejected fields in form order.
//   - ErrCheckFailed wrapping the cause when a custom check could not run.
//   - ErrUnsupportedType or ErrUnknownField for programming errors.
func (s *RuleSet) Validate(ctx context.Context, obj any, fields ...string) error {
	var form url.Values
	switch value := obj.(type) {
	case url.Values:
		form = value
	case *http.Request:
		if value.PostForm == nil {
			return fmt.Errorf("%w: request form is not parsed", ErrUnsupportedType)
		}
		form = value.PostForm
	default:
		return ErrUnsupportedType
	}

	for _, name := range fields {
		if !slices.ContainsFunc(s.fields, func(f *Field) bool { return f.name == name }) {
			return fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
	}

	var errs Errors
	for _, f := range s.fields {
		if len(fields) > 0 && !slices.Contains(fields, f.name) {
			continue
		}

		value, message, err := f.run(ctx, form.Get(f.name))
		if err != nil {
			return fmt.Errorf("%w: %s.%s: %w", ErrCheckFailed, s.name, f.name, err)
		}
		form.Set(f.name, value)

		if message != "" {
			errs = append(errs, FieldError{Field: f.name, Message: message})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (s *RuleSet) Echo(form url.Values) url.Values {
	echo := make(url.Values, len(form))
	for key, values := range form {
		echo[key] = slices.Clone(values)
	}
	for _, f := range s.fields {
		if f.sensitive {
			delete(echo, f.name)
		}
	}
	return echo
}
