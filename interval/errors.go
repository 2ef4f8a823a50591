package interval

import (
	"errors"
	"fmt"
)

// ErrDivideByZero is returned when an interval is divided by a zero factor.
var ErrDivideByZero = errors.New("interval: divide by zero")

// SyntaxError reports interval text that does not conform to the grammar.
// It is the only error kind that ParseSafe downgrades to an absent result.
type SyntaxError struct {
	Input string // the input as passed by the caller
	Pos   int    // byte offset in the scanned (trimmed, lowercased) input
	Msg   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parse interval %q: %s", e.Input, e.Msg)
}

// RangeError reports a parsed field value outside its permitted range.
type RangeError struct {
	Unit  Unit
	Value int64
	Min   int64
	Max   int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d outside range [%d, %d]", e.Unit, e.Value, e.Min, e.Max)
}

// OverflowError reports a checked arithmetic step that exceeded the 32 or
// 64 bit range of an interval field.
type OverflowError struct {
	Op string
}

func (e *OverflowError) Error() string {
	return e.Op + ": integer overflow"
}

// ConversionError reports a conversion target the interval model cannot
// serve, such as truncating a day-time literal to the day unit or asking for
// a month-denominated duration.
type ConversionError struct {
	Input string
	From  Unit
	To    Unit
}

func (e *ConversionError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("cannot support (interval '%s' %s to %s) expression", e.Input, e.From, e.To)
	}
	return fmt.Sprintf("cannot convert interval duration from %s to %s", e.From, e.To)
}

// PreconditionError is the panic value raised when a caller breaks an API
// contract, such as passing untrimmed input to ParseYearMonth or
// ParseDayTime. It marks a bug in the caller, not bad data, and is therefore
// kept apart from the error returns above.
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string {
	return "precondition violated: " + e.Msg
}
