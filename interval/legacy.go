package interval

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lagoonql/interval-toolbox-go/interval/internal/overflow"
)

// The two fixed field forms are single anchored patterns, unlike the free
// multi unit literal handled by the scanner in parse.go.
var (
	yearMonthPattern = regexp.MustCompile(`^([+-])?(\d+)-(\d+)$`)
	dayTimePattern   = regexp.MustCompile(`^([+-])?((\d+) )?((\d+):)?(\d+):(\d+)(\.(\d+))?$`)
)

// ParseYearMonth parses the SQL year-month interval form "[+|-]Y-M", for
// example "1-2" meaning one year and two months. The year must lie in
// [0, math.MaxInt32] and the month in [0, 11]; a leading '-' negates the
// whole interval. Days and microseconds are always zero.
//
// The input must be trimmed by the caller; untrimmed input panics with
// *PreconditionError.
func ParseYearMonth(s string) (Value, error) {
	requireTrimmed(s)
	m := yearMonthPattern.FindStringSubmatch(s)
	if m == nil {
		return Value{}, &SyntaxError{Input: s, Msg: "interval string does not match year-month format 'y-m'"}
	}
	years, err := fieldInRange(UnitYear, m[2], 0, math.MaxInt32)
	if err != nil {
		return Value{}, fmt.Errorf("parse year-month interval %q: %w", s, err)
	}
	extraMonths, err := fieldInRange(UnitMonth, m[3], 0, 11)
	if err != nil {
		return Value{}, fmt.Errorf("parse year-month interval %q: %w", s, err)
	}
	total, ok := overflow.Mul[int64](years, MonthsPerYear)
	if ok {
		total, ok = overflow.Add[int64](total, extraMonths)
	}
	var months int32
	if ok {
		months, ok = overflow.Int32(total)
	}
	if !ok {
		return Value{}, fmt.Errorf("parse year-month interval %q: %w", s, &OverflowError{Op: "fold years into months"})
	}
	if m[1] == "-" {
		months = -months
	}
	return Value{Months: months}, nil
}

// ParseDayTime parses the SQL day-time interval form
// "[+|-][D ][H:]M:S[.F]". The from unit decides how a bare two field time
// reads: UnitMinute makes it minute:second, anything else hour:minute
// (unless a fraction is present, which forces minute:second). The to unit
// truncates all fields finer than it to zero; only UnitHour, UnitMinute and
// UnitSecond are supported, any other to returns *ConversionError.
//
// Field ranges are day [0, math.MaxInt32], hour [0, 23], minute and second
// [0, 59]. Fractions are read at nanosecond precision (nine digits, right
// padded, longer input truncated) and rounded down to microseconds. The
// sign applies to the whole interval. Months are always zero.
//
// The input must be trimmed by the caller; untrimmed input panics with
// *PreconditionError.
func ParseDayTime(s string, from, to Unit) (Value, error) {
	requireTrimmed(s)
	m := dayTimePattern.FindStringSubmatch(s)
	if m == nil {
		return Value{}, &SyntaxError{Input: s, Msg: "interval string does not match day-time format 'd h:m:s.n'"}
	}
	sign := int64(1)
	if m[1] == "-" {
		sign = -1
	}
	days, err := fieldInRange(UnitDay, m[3], 0, math.MaxInt32)
	if err != nil {
		return Value{}, fmt.Errorf("parse day-time interval %q: %w", s, err)
	}

	var hours, minutes, seconds int64
	switch {
	case m[5] != "" || from == UnitMinute:
		// "[H:]M:S", with the hour defaulting to zero when absent.
		hours, err = fieldInRange(UnitHour, m[5], 0, 23)
		if err == nil {
			minutes, err = fieldInRange(UnitMinute, m[6], 0, 59)
		}
		if err == nil {
			seconds, err = fieldInRange(UnitSecond, m[7], 0, 59)
		}
	case m[8] != "":
		// A fraction forces the minute:second reading.
		minutes, err = fieldInRange(UnitMinute, m[6], 0, 59)
		if err == nil {
			seconds, err = fieldInRange(UnitSecond, m[7], 0, 59)
		}
	default:
		hours, err = fieldInRange(UnitHour, m[6], 0, 23)
		if err == nil {
			minutes, err = fieldInRange(UnitMinute, m[7], 0, 59)
		}
	}
	if err != nil {
		return Value{}, fmt.Errorf("parse day-time interval %q: %w", s, err)
	}

	fracMicros, err := parseNanos(m[9])
	if err != nil {
		return Value{}, fmt.Errorf("parse day-time interval %q: %w", s, err)
	}

	switch to {
	case UnitHour:
		minutes, seconds, fracMicros = 0, 0, 0
	case UnitMinute:
		seconds, fracMicros = 0, 0
	case UnitSecond:
	default:
		return Value{}, &ConversionError{Input: s, From: from, To: to}
	}

	micros := fracMicros
	var ok bool
	for _, part := range []struct {
		value int64
		scale int64
	}{
		{hours, MicrosPerHour},
		{minutes, MicrosPerMinute},
		{seconds, MicrosPerSecond},
	} {
		var us int64
		if us, ok = overflow.Mul[int64](part.value, part.scale); ok {
			micros, ok = overflow.Add[int64](micros, us)
		}
		if !ok {
			return Value{}, fmt.Errorf("parse day-time interval %q: %w", s, &OverflowError{Op: "fold time fields"})
		}
	}

	return Value{Days: int32(sign) * int32(days), Micros: sign * micros}, nil
}

// parseNanos reads a fractional seconds string at nanosecond resolution and
// returns whole microseconds.
func parseNanos(frac string) (int64, error) {
	if frac == "" {
		return 0, nil
	}
	const maxNanosDigits = 9
	if len(frac) < maxNanosDigits {
		frac += strings.Repeat("0", maxNanosDigits-len(frac))
	}
	nanos, err := fieldInRange(UnitNanosecond, frac[:maxNanosDigits], 0, 999_999_999)
	if err != nil {
		return 0, err
	}
	return nanos / NanosPerMicro, nil
}

// fieldInRange parses a digit string and checks it against the unit's
// permitted range. An empty string counts as zero.
func fieldInRange(unit Unit, s string, min, max int64) (int64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < min || v > max {
		return 0, &RangeError{Unit: unit, Value: v, Min: min, Max: max}
	}
	return v, nil
}

func requireTrimmed(s string) {
	if len(s) != len(strings.TrimSpace(s)) {
		panic(&PreconditionError{Msg: fmt.Sprintf("interval string %q must be trimmed before parsing", s)})
	}
}
