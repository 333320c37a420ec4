package audit

import "fmt"

// TooShortError is returned when a buffer is smaller than the minimum a
// format requires.
type TooShortError struct {
	What string
	Len  int
	Min  int
}

func (e *TooShortError) Error() string {
	return fmt.Sprintf("%s too short: %d bytes, need at least %d", e.What, e.Len, e.Min)
}

// UnknownFieldCodeError is returned when a rule descriptor carries a
// field-type code outside the closed vocabulary.
type UnknownFieldCodeError struct {
	Code uint32
}

func (e *UnknownFieldCodeError) Error() string {
	return fmt.Sprintf("unknown rule field code %d", e.Code)
}

// TruncatedStringPoolError is returned when a string-valued descriptor
// declares a length that would read past the end of the string pool.
type TruncatedStringPoolError struct {
	Declared  int64
	Remaining int
}

func (e *TruncatedStringPoolError) Error() string {
	return fmt.Sprintf("truncated string pool: declared length %d, %d bytes left", e.Declared, e.Remaining)
}

// UnsupportedMessageTypeError is returned by the dispatcher for a netlink
// message type it has no codec for.
type UnsupportedMessageTypeError struct {
	Type uint16
}

func (e *UnsupportedMessageTypeError) Error() string {
	return fmt.Sprintf("unsupported audit message type %d (%s)", e.Type, TypeString(e.Type))
}

// TooManyFieldsError is returned when a rule holds more fields than the
// wire format can carry.
type TooManyFieldsError struct {
	Count int
	Max   int
}

func (e *TooManyFieldsError) Error() string {
	return fmt.Sprintf("rule has %d fields, the maximum is %d", e.Count, e.Max)
}
