package hershey

import (
	"errors"
	"strconv"
)

// Sentinel errors returned by Decode and DecodeFixedWidth.
var (
	// ErrTooShort is returned when a record is too short to hold the id,
	// count and bearing fields.
	ErrTooShort = errors.New("hershey: record too short")

	// ErrInvalidSpacing is returned when no whitespace ends the id field.
	ErrInvalidSpacing = errors.New("hershey: no whitespace after id")

	// ErrInvalidAfterwards is returned when the record never leaves the
	// id/count region.
	ErrInvalidAfterwards = errors.New("hershey: no bearing data after count")

	// ErrNumericParse is matched by every *NumericError.
	ErrNumericParse = errors.New("hershey: invalid number")

	// ErrMalformedVertices is returned for an odd number of coordinate characters.
	ErrMalformedVertices = errors.New("hershey: odd number of coordinate characters")
)

// NumericError reports an id or count field that is not a base-10 integer.
type NumericError struct {
	Field string // "id" or "count"
	Text  string
	Err   error
}

func (e *NumericError) Error() string {
	return "hershey: invalid " + e.Field + " " + strconv.Quote(e.Text) + ": " + e.Err.Error()
}

func (e *NumericError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrNumericParse) succeed.
func (e *NumericError) Is(target error) bool {
	return target == ErrNumericParse
}

// LineError locates a decode failure within a font file.
type LineError struct {
	Font string
	Line int // 1-based
	Text string
	Err  error
}

func (e *LineError) Error() string {
	prefix := e.Font
	if prefix == "" {
		prefix = "hershey"
	}
	return prefix + ":" + strconv.Itoa(e.Line) + ": " + e.Err.Error()
}

func (e *LineError) Unwrap() error { return e.Err }
