package squareerrors

import "errors"

// Kind tags an error with its variant in the taxonomy.
type Kind int

// Kinds of taxonomy errors. [KindUnknown] covers every error outside the
// taxonomy.
const (
	KindUnknown Kind = iota
	KindInvalidArgument
	KindOutOfRange
	KindFileOpen
	KindFileRead
	KindFileWrite
)

var kindNames = map[Kind]string{
	KindUnknown:         "unknown",
	KindInvalidArgument: "invalid_argument",
	KindOutOfRange:      "out_of_range",
	KindFileOpen:        "file_open",
	KindFileRead:        "file_read",
	KindFileWrite:       "file_write",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return kindNames[KindUnknown]
}

// KindOf returns the [Kind] of the first taxonomy error in err's chain, or
// [KindUnknown] if there is none.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, ErrOutOfRange):
		return KindOutOfRange
	case errors.Is(err, ErrFileOpen):
		return KindFileOpen
	case errors.Is(err, ErrFileRead):
		return KindFileRead
	case errors.Is(err, ErrFileWrite):
		return KindFileWrite
	default:
		return KindUnknown
	}
}

// IsKnown reports whether err's chain contains a taxonomy error.
func IsKnown(err error) bool {
	return errors.Is(err, ErrLogic) || errors.Is(err, ErrFile)
}
