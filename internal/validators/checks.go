package validators

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	emailRe        = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)
	alphanumericRe = regexp.MustCompile(`^[0-9A-Za-z]+$`)
	intRe          = regexp.MustCompile(`^[-+]?[0-9]+$`)
	floatRe        = regexp.MustCompile(`^[-+]?(?:[0-9]+)?(?:\.[0-9]*)?(?:[eE][-+]?[0-9]+)?$`)
)

const passwordSymbols = "-#!$@£%^&*()_+|~=`{}[]:\";'<>?,./\\ "

// PasswordPolicy is the minimum composition of a strong password.
// MaxBytes, when positive, caps the encoded length.
type PasswordPolicy struct {
	MinLength    int
	MaxBytes     int
	MinLowercase int
	MinUppercase int
	MinNumbers   int
	MinSymbols   int
}

// DefaultPasswordPolicy requires at least 12 characters with one lowercase
// letter, one uppercase letter, one digit and one symbol. bcrypt refuses
// anything longer than 72 bytes.
var DefaultPasswordPolicy = PasswordPolicy{
	MinLength:    12,
	MaxBytes:     72,
	MinLowercase: 1,
	MinUppercase: 1,
	MinNumbers:   1,
	MinSymbols:   1,
}

func (p PasswordPolicy) satisfied(password string) bool {
	if p.MaxBytes > 0 && len(password) > p.MaxBytes {
		return false
	}

	var length, lower, upper, numbers, symbols int
	for _, r := range password {
		length++
		switch {
		case r >= 'a' && r <= 'z':
			lower++
		case r >= 'A' && r <= 'Z':
			upper++
		case r >= '0' && r <= '9':
			numbers++
		case strings.ContainsRune(passwordSymbols, r):
			symbols++
		}
	}

	return length >= p.MinLength &&
		lower >= p.MinLowercase &&
		upper >= p.MinUppercase &&
		numbers >= p.MinNumbers &&
		symbols >= p.MinSymbols
}

func isEmail(v string) bool {
	if len(v) > 254 {
		return false
	}
	at := strings.LastIndexByte(v, '@')
	if at < 1 || at > 64 {
		return false
	}
	local := v[:at]
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") || strings.Contains(local, "..") {
		return false
	}
	return emailRe.MatchString(v)
}

func isAlphanumeric(v string) bool {
	return alphanumericRe.MatchString(v)
}

func isIntInRange(v string, lo, hi int64) bool {
	if !intRe.MatchString(v) {
		return false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return false
	}
	return n >= lo && n <= hi
}

func isFloatInRange(v string, lo, hi float64) bool {
	switch v {
	case "", ".", "-", "+":
		return false
	}
	if !floatRe.MatchString(v) {
		return false
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return false
	}
	return n >= lo && n <= hi
}
