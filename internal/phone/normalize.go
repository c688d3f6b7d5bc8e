package phone

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinLength is the shortest accepted cleaned number, counting the leading plus.
const MinLength = 8

// Normalize strips everything except decimal digits and '+' from raw,
// rewrites digits of any script as ASCII and checks the result carries a
// country code and is long enough to parse.
func Normalize(raw string) (string, error) {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r == '+':
			b.WriteRune(r)
		case unicode.IsDigit(r):
			b.WriteRune(asciiDigit(r))
		}
	}
	cleaned := b.String()

	if !strings.HasPrefix(cleaned, "+") {
		return "", ErrMissingCountryCode
	}
	if utf8.RuneCountInString(cleaned) < MinLength {
		return "", ErrTooShort
	}
	return cleaned, nil
}

// asciiDigit maps a Unicode decimal digit to '0'..'9'. Every Nd range starts
// at a zero and runs in blocks of ten.
func asciiDigit(r rune) rune {
	if r >= '0' && r <= '9' {
		return r
	}
	for _, rg := range unicode.Nd.R16 {
		lo, hi := rune(rg.Lo), rune(rg.Hi)
		if r >= lo && r <= hi {
			return '0' + (r-lo)/rune(rg.Stride)%10
		}
	}
	for _, rg := range unicode.Nd.R32 {
		lo, hi := rune(rg.Lo), rune(rg.Hi)
		if r >= lo && r <= hi {
			return '0' + (r-lo)/rune(rg.Stride)%10
		}
	}
	return r
}
