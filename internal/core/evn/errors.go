package evn

import "errors"

// Sentinel errors returned by the codec and the generator. Callers match them
// with errors.Is; returned errors usually wrap one of these with detail.
var (
	ErrInvalidLength      = errors.New("invalid EVN length - must be 12 digits")
	ErrInvalidCountryCode = errors.New("invalid country code")
	ErrInvalidChecksum    = errors.New("invalid EVN checksum")
	ErrInvalidSubType     = errors.New("invalid locomotive type")
)

// ErrorKind classifies an error for callers that render their own messages.
type ErrorKind uint8

const (
	// KindNone is reported for a nil error.
	KindNone ErrorKind = iota
	KindInvalidLength
	KindInvalidCountryCode
	KindInvalidChecksum
	KindInvalidSubType
	// KindOther is any error that did not originate in this package.
	KindOther
)

// String returns a stable identifier for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInvalidLength:
		return "invalid_length"
	case KindInvalidCountryCode:
		return "invalid_country_code"
	case KindInvalidChecksum:
		return "invalid_checksum"
	case KindInvalidSubType:
		return "invalid_locomotive_type"
	default:
		return "other"
	}
}

// KindOf maps err to its ErrorKind.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidLength):
		return KindInvalidLength
	case errors.Is(err, ErrInvalidCountryCode):
		return KindInvalidCountryCode
	case errors.Is(err, ErrInvalidChecksum):
		return KindInvalidChecksum
	case errors.Is(err, ErrInvalidSubType):
		return KindInvalidSubType
	default:
		return KindOther
	}
}
