package datetime

import "errors"

// Reasons a [DateTime] may be invalid, as reported by [DateTime.Err]. Constructors never return these directly.
var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrUnknownTimezone  = errors.New("unknown timezone")
	ErrFormatMismatch   = errors.New("input does not match format")
	ErrUnsupportedInput = errors.New("unsupported input type")
	ErrEngineFailure    = errors.New("calendar engine failure")
)

// Errors returned when encoding or decoding binary timestamp records
var (
	ErrRecordRange   = errors.New("date-time cannot be represented in record")
	ErrInvalidRecord = errors.New("malformed date-time record")
)

// invalidDateString is what an invalid [DateTime] formats to
const invalidDateString = "Invalid Date"
