package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"
)

// CheckFunc is a custom check. It returns false when value is rejected and a
// non-nil error when the check itself could not be completed.
type CheckFunc func(ctx context.Context, value string) (bool, error)

// step is one link of a field chain: either a sanitizer or a check.
type step struct {
	sanitize func(string) string
	check    CheckFunc
	message  string
}

// Field is an ordered chain of sanitizers and checks for one form field.
type Field struct {
	name      string
	sensitive bool
	steps     []step
}

// NewField starts an empty chain for the named form field.
func NewField(name string) *Field {
	return &Field{name: name}
}

// Name returns the form field name.
func (f *Field) Name() string {
	return f.name
}

// Sensitive marks the field as one whose value must never be echoed back.
func (f *Field) Sensitive() *Field {
	f.sensitive = true
	return f
}

func (f *Field) sanitizer(fn func(string) string) *Field {
	f.steps = append(f.steps, step{sanitize: fn})
	return f
}

func (f *Field) checker(fn func(string) bool, message string) *Field {
	return f.Custom(func(_ context.Context, value string) (bool, error) {
		return fn(value), nil
	}, message)
}

func (f *Field) Trim() *Field {
	return f.sanitizer(strings.TrimSpace)
}

// Escape replaces markup-significant characters with HTML entities.
func (f *Field) Escape() *Field {
	return f.sanitizer(escape)
}

func (f *Field) NormalizeEmail() *Field {
	return f.sanitizer(normalizeEmail)
}

func (f *Field) NotEmpty(message string) *Field {
	return f.checker(func(v string) bool { return v != "" }, message)
}

// MinLength rejects values shorter than n characters.
func (f *Field) MinLength(n int, message string) *Field {
	return f.checker(func(v string) bool { return utf8.RuneCountInString(v) >= n }, message)
}

func (f *Field) IsEmail(message string) *Field {
	return f.checker(isEmail, message)
}

func (f *Field) IsStrongPassword(policy PasswordPolicy, message string) *Field {
	return f.checker(policy.satisfied, message)
}

func (f *Field) IsAlphanumeric(message string) *Field {
	return f.checker(isAlphanumeric, message)
}

// IsInt accepts base-10 integers within [lo, hi].
func (f *Field) IsInt(lo, hi int64, message string) *Field {
	return f.checker(func(v string) bool { return isIntInRange(v, lo, hi) }, message)
}

// IsFloat accepts decimal numbers within [lo, hi].
func (f *Field) IsFloat(lo, hi float64, message string) *Field {
	return f.checker(func(v string) bool { return isFloatInRange(v, lo, hi) }, message)
}

func (f *Field) Matches(re *regexp.Regexp, message string) *Field {
	return f.checker(re.MatchString, message)
}

// Custom appends an arbitrary check, typically one that consults a
// collaborator such as the account store.
func (f *Field) Custom(fn CheckFunc, message string) *Field {
	f.steps = append(f.steps, step{check: fn, message: message})
	return f
}

// run applies the chain to value. It returns the sanitized value and the
// message of the first failing check, or "" when every check passed.
func (f *Field) run(ctx context.Context, value string) (string, string, error) {
	for _, s := range f.steps {
		if s.sanitize != nil {
			value = s.sanitize(value)
			continue
		}

		ok, err := s.check(ctx, value)
		if err != nil {
			return value, "", err
		}
		if !ok {
			return value, s.message, nil
		}
	}
	return value, "", nil
}
