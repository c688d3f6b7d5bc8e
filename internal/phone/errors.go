package phone

import "strings"

// InputErrorKind classifies user-correctable input failures.
type InputErrorKind string

const (
	KindMissingCountryCode InputErrorKind = "missing_country_code"
	KindTooShort           InputErrorKind = "too_short"
	KindUnparsable         InputErrorKind = "unparsable"
	KindInvalid            InputErrorKind = "invalid"
)

// InputError is returned for input the user can fix by resending the number.
type InputError struct {
	Kind   InputErrorKind
	Reason string
	Err    error
}

func (e *InputError) Error() string { return e.Reason }

func (e *InputError) Unwrap() error { return e.Err }

// Is matches any InputError of the same kind, so callers can use the sentinels below with errors.Is.
func (e *InputError) Is(target error) bool {
	t, ok := target.(*InputError)
	return ok && t.Kind == e.Kind
}

// Code reports the kind in the form used by handler summaries.
func (e *InputError) Code() string { return strings.ToUpper(string(e.Kind)) }

var (
	ErrMissingCountryCode = &InputError{Kind: KindMissingCountryCode, Reason: "Phone number must start with + and country code"}
	ErrTooShort           = &InputError{Kind: KindTooShort, Reason: "Phone number is too short"}
	ErrUnparsable         = &InputError{Kind: KindUnparsable, Reason: "Parse error: Could not recognize number"}
	ErrInvalidFormat      = &InputError{Kind: KindInvalid, Reason: "Invalid phone number format"}
)

func parseError(err error) *InputError {
	return &InputError{
		Kind:   KindUnparsable,
		Reason: ErrUnparsable.Reason + ": " + err.Error(),
		Err:    err,
	}
}
