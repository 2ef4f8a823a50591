package interval

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lagoonql/interval-toolbox-go/interval/internal/overflow"
)

// parseState tags the position of the literal scanner within the input.
type parseState uint8

const (
	parsePrefix parseState = iota
	parseTrimBeforeSign
	parseSign
	parseTrimBeforeValue
	parseValue
	parseValueFraction
	parseTrimBeforeUnit
	parseUnitBegin
	parseUnitSuffix
	parseUnitEnd
)

const intervalPrefix = "interval"

// The first fractional digit is worth a tenth of a second. Fractions are
// accumulated in nanoseconds and divided down when the segment ends.
const initialFractionScale = NanosPerSecond / 10

// Parse parses an interval literal in the multi unit form: an optional
// "interval" prefix followed by one or more segments of
//
//	[+|-]value[.fraction] unit
//
// where unit is one of year, month, week, day, hour, minute, second,
// millisecond or microsecond, optionally pluralized with a trailing "s".
// Matching is case insensitive and the input is trimmed first. Only the
// second unit accepts a fraction, with at most nine fractional digits.
//
// Example:
//
//	v, err := interval.Parse("interval -1 year 3 weeks 1.5 seconds")
//
// Malformed text returns *SyntaxError; a value or field fold that exceeds
// the representable range returns *OverflowError.
func Parse(s string) (Value, error) {
	folded := strings.ToLower(strings.TrimSpace(s))
	if folded == "" {
		return Value{}, &SyntaxError{Input: s, Msg: "interval string cannot be empty"}
	}

	var (
		months int32
		days   int32
		micros int64
	)

	state := parsePrefix
	i := 0
	var (
		value         int64
		fraction      int64
		fractionScale int64 = -1
		pointPrefixed bool
		negative      bool
	)

	// The whitespace separated word at the scan position, for error
	// messages.
	currentWord := func() string {
		words := strings.Fields(folded)
		idx := len(words) - len(strings.Fields(folded[i:]))
		if idx < 0 {
			idx = 0
		} else if idx >= len(words) {
			idx = len(words) - 1
		}
		return words[idx]
	}
	syntaxErrf := func(format string, args ...any) error {
		return &SyntaxError{Input: s, Pos: i, Msg: fmt.Sprintf(format, args...)}
	}

	for i < len(folded) {
		b := folded[i]
		switch state {
		case parsePrefix:
			if strings.HasPrefix(folded, intervalPrefix) {
				if len(folded) == len(intervalPrefix) {
					return Value{}, syntaxErrf("interval string cannot be empty")
				}
				if folded[len(intervalPrefix)] != ' ' {
					return Value{}, syntaxErrf("invalid interval prefix '%s'", currentWord())
				}
				i += len(intervalPrefix) + 1
			}
			state = parseTrimBeforeSign

		case parseTrimBeforeSign:
			if b == ' ' {
				i++
			} else {
				state = parseSign
			}

		case parseSign:
			value, fraction, fractionScale, pointPrefixed = 0, 0, -1, false
			state = parseTrimBeforeValue
			switch {
			case b == '-':
				negative = true
				i++
			case b == '+':
				negative = false
				i++
			case '0' <= b && b <= '9':
				negative = false
			case b == '.':
				// A fraction-only value such as ".5 seconds".
				negative = false
				fractionScale = initialFractionScale
				pointPrefixed = true
				i++
				state = parseValueFraction
			default:
				return Value{}, syntaxErrf("unrecognized number '%s'", currentWord())
			}

		case parseTrimBeforeValue:
			if b == ' ' {
				i++
			} else {
				state = parseValue
			}

		case parseValue:
			switch {
			case '0' <= b && b <= '9':
				v, ok := overflow.Mul[int64](10, value)
				if ok {
					v, ok = overflow.Add[int64](v, int64(b-'0'))
				}
				if !ok {
					return Value{}, &OverflowError{Op: "parse interval value"}
				}
				value = v
			case b == ' ':
				state = parseTrimBeforeUnit
			case b == '.':
				fractionScale = initialFractionScale
				state = parseValueFraction
			default:
				return Value{}, syntaxErrf("invalid value '%s'", currentWord())
			}
			i++

		case parseValueFraction:
			switch {
			case '0' <= b && b <= '9' && fractionScale > 0:
				fraction += int64(b-'0') * fractionScale
				fractionScale /= 10
			case b == ' ' && (!pointPrefixed || fractionScale < initialFractionScale):
				fraction /= NanosPerMicro
				state = parseTrimBeforeUnit
			case '0' <= b && b <= '9':
				return Value{}, syntaxErrf("interval can only support nanosecond precision, '%s' is out of range", currentWord())
			default:
				return Value{}, syntaxErrf("invalid value '%s'", currentWord())
			}
			i++

		case parseTrimBeforeUnit:
			if b == ' ' {
				i++
			} else {
				state = parseUnitBegin
			}

		case parseUnitBegin:
			// Only the second unit may carry a fraction.
			if b != 's' && fractionScale >= 0 {
				return Value{}, syntaxErrf("'%s' cannot have fractional part", currentWord())
			}
			if negative {
				value = -value
				fraction = -fraction
			}
			rem := folded[i:]
			var ok bool
			switch {
			case b == 'y' && strings.HasPrefix(rem, "year"):
				var m int64
				if m, ok = overflow.Mul[int64](MonthsPerYear, value); ok {
					months, ok = addToInt32(months, m)
				}
				i += len("year")
			case b == 'w' && strings.HasPrefix(rem, "week"):
				var d int64
				if d, ok = overflow.Mul[int64](DaysPerWeek, value); ok {
					days, ok = addToInt32(days, d)
				}
				i += len("week")
			case b == 'd' && strings.HasPrefix(rem, "day"):
				days, ok = addToInt32(days, value)
				i += len("day")
			case b == 'h' && strings.HasPrefix(rem, "hour"):
				var us int64
				if us, ok = overflow.Mul[int64](value, MicrosPerHour); ok {
					micros, ok = overflow.Add[int64](micros, us)
				}
				i += len("hour")
			case b == 's' && strings.HasPrefix(rem, "second"):
				var us int64
				if us, ok = overflow.Mul[int64](value, MicrosPerSecond); ok {
					if micros, ok = overflow.Add[int64](micros, us); ok {
						micros, ok = overflow.Add[int64](micros, fraction)
					}
				}
				i += len("second")
			// Fixed priority for the m units: month, minute,
			// millisecond, microsecond.
			case b == 'm' && strings.HasPrefix(rem, "month"):
				months, ok = addToInt32(months, value)
				i += len("month")
			case b == 'm' && strings.HasPrefix(rem, "minute"):
				var us int64
				if us, ok = overflow.Mul[int64](value, MicrosPerMinute); ok {
					micros, ok = overflow.Add[int64](micros, us)
				}
				i += len("minute")
			case b == 'm' && strings.HasPrefix(rem, "millisecond"):
				var us int64
				if us, ok = overflow.Mul[int64](value, MicrosPerMilli); ok {
					micros, ok = overflow.Add[int64](micros, us)
				}
				i += len("millisecond")
			case b == 'm' && strings.HasPrefix(rem, "microsecond"):
				micros, ok = overflow.Add[int64](micros, value)
				i += len("microsecond")
			default:
				return Value{}, syntaxErrf("invalid unit '%s'", currentWord())
			}
			if !ok {
				return Value{}, &OverflowError{Op: "parse interval value"}
			}
			state = parseUnitSuffix

		case parseUnitSuffix:
			switch b {
			case 's':
				state = parseUnitEnd
			case ' ':
				state = parseTrimBeforeSign
			default:
				return Value{}, syntaxErrf("invalid unit '%s'", currentWord())
			}
			i++

		case parseUnitEnd:
			if b != ' ' {
				return Value{}, syntaxErrf("invalid unit '%s'", currentWord())
			}
			i++
			state = parseTrimBeforeSign
		}
	}

	switch state {
	case parseUnitSuffix, parseUnitEnd, parseTrimBeforeSign:
		return Value{Months: months, Days: days, Micros: micros}, nil
	case parseTrimBeforeValue:
		return Value{}, syntaxErrf("expect a number after '%s' but hit EOL", currentWord())
	case parseValue, parseValueFraction:
		return Value{}, syntaxErrf("expect a unit name after '%s' but hit EOL", currentWord())
	default:
		return Value{}, syntaxErrf("unknown error when parsing '%s'", currentWord())
	}
}

// ParseSafe parses like Parse but reports malformed input as an absent
// result instead of an error: ok is false and err is nil. Errors that are
// not syntax errors, such as an overflowing value, still propagate.
func ParseSafe(s string) (Value, bool, error) {
	v, err := Parse(s)
	if err != nil {
		var syntaxErr *SyntaxError
		if errors.As(err, &syntaxErr) {
			return Value{}, false, nil
		}
		return Value{}, false, err
	}
	return v, true, nil
}

// MustParse parses an interval literal and panics if it is invalid. Useful
// for literals hardcoded in tests or setup code.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// addToInt32 adds a 64 bit delta to a 32 bit field, reporting whether the
// sum still fits the field.
func addToInt32(cur int32, delta int64) (int32, bool) {
	sum, ok := overflow.Add[int64](int64(cur), delta)
	if !ok {
		return 0, false
	}
	return overflow.Int32(sum)
}
