// Package interval implements the three-field calendar interval used by the
// SQL layer: a number of months, a number of days and a number of
// microseconds, kept strictly separate.
//
// The fields are not interchangeable without a calendar policy (how long is a
// month?), so no operation normalizes between them implicitly. Conversions
// across field boundaries happen only in the explicitly named justify
// operations and in Duration, with fixed ratios of 12 months per year,
// 7 days per week, 30 days per month and 24 hours per day.
package interval

import (
	"strconv"
	"strings"
)

// Conversion ratios shared by the parsers, normalizers and formatters.
const (
	MonthsPerYear = 12
	DaysPerWeek   = 7
	DaysPerMonth  = 30
	HoursPerDay   = 24

	MicrosPerMilli  = 1000
	MicrosPerSecond = 1000 * MicrosPerMilli
	MicrosPerMinute = 60 * MicrosPerSecond
	MicrosPerHour   = 60 * MicrosPerMinute
	MicrosPerDay    = HoursPerDay * MicrosPerHour

	NanosPerMicro  = 1000
	NanosPerSecond = NanosPerMicro * MicrosPerSecond
)

// DefaultDaysPerMonth is the month length used for duration estimates when
// the caller has no better policy. Thirty one days makes the estimate an
// upper bound, which is what watermark arithmetic needs.
const DefaultDaysPerMonth = 31

// Value is a calendar interval: months, days and microseconds, each carrying
// its own sign. Value is immutable; all operations return a new Value.
//
// Equality is field wise. One month and thirty days describe the same span
// under the default calendar policy but are NOT equal values.
type Value struct {
	Months int32
	Days   int32
	Micros int64
}

// New returns the interval with the given field values.
func New(months, days int32, micros int64) Value {
	return Value{Months: months, Days: days, Micros: micros}
}

// IsZero reports whether all three fields are zero.
func (v Value) IsZero() bool {
	return v == Value{}
}

// String renders the interval in the multi unit form, for example
// "1 years 2 months 3 days 4.5 seconds". Unit words are always plural and
// zero components are omitted; the zero interval renders as "0 seconds".
// Parse reads the rendered form back to an equal Value.
func (v Value) String() string {
	if v.IsZero() {
		return "0 seconds"
	}
	var sb strings.Builder
	appendUnit(&sb, int64(v.Months/MonthsPerYear), "years")
	appendUnit(&sb, int64(v.Months%MonthsPerYear), "months")
	appendUnit(&sb, int64(v.Days), "days")
	if v.Micros != 0 {
		rest := v.Micros
		appendUnit(&sb, rest/MicrosPerHour, "hours")
		rest %= MicrosPerHour
		appendUnit(&sb, rest/MicrosPerMinute, "minutes")
		rest %= MicrosPerMinute
		if rest != 0 {
			sb.WriteString(secondsString(rest))
			sb.WriteString(" seconds ")
		}
	}
	s := sb.String()
	return s[:len(s)-1]
}

func appendUnit(sb *strings.Builder, value int64, unit string) {
	if value != 0 {
		sb.WriteString(strconv.FormatInt(value, 10))
		sb.WriteByte(' ')
		sb.WriteString(unit)
		sb.WriteByte(' ')
	}
}
