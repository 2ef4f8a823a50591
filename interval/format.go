package interval

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/lagoonql/interval-toolbox-go/interval/internal/overflow"
)

const decimalPrecision = 34

// SQLStandardString renders the interval in the SQL standard style:
// "[±Y-M] [±D] [±H:MM:SS[.ffffff]]". Each part is omitted when its source
// field is zero and carries its own explicit sign; minutes and whole
// seconds are zero padded to two digits and fractional seconds drop
// trailing zeros. The zero interval renders as "0".
func (v Value) SQLStandardString() string {
	var parts []string
	if v.Months != 0 {
		if v.Months < 0 {
			months := -int64(v.Months)
			parts = append(parts, "-"+strconv.FormatInt(months/MonthsPerYear, 10)+"-"+strconv.FormatInt(months%MonthsPerYear, 10))
		} else {
			parts = append(parts, "+"+strconv.FormatInt(int64(v.Months/MonthsPerYear), 10)+"-"+strconv.FormatInt(int64(v.Months%MonthsPerYear), 10))
		}
	}
	if v.Days != 0 {
		if v.Days < 0 {
			parts = append(parts, strconv.FormatInt(int64(v.Days), 10))
		} else {
			parts = append(parts, "+"+strconv.FormatInt(int64(v.Days), 10))
		}
	}
	if v.Micros != 0 {
		var sb strings.Builder
		abs := uint64(v.Micros)
		if v.Micros < 0 {
			sb.WriteByte('-')
			abs = -abs
		} else {
			sb.WriteByte('+')
		}
		sb.WriteString(strconv.FormatUint(abs/MicrosPerHour, 10))
		sb.WriteByte(':')
		rest := abs % MicrosPerHour
		minutes := rest / MicrosPerMinute
		if minutes < 10 {
			sb.WriteByte('0')
		}
		sb.WriteString(strconv.FormatUint(minutes, 10))
		sb.WriteByte(':')
		secMicros := int64(rest % MicrosPerMinute)
		if secMicros < 10*MicrosPerSecond {
			sb.WriteByte('0')
		}
		sb.WriteString(secondsString(secMicros))
		parts = append(parts, sb.String())
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, " ")
}

// ISO8601String renders the interval as an ISO 8601 duration:
// "P[nY][nM][nD][T[nH][nM][nS]]". Zero components are omitted, a zero time
// part drops the "T", negative components carry their own sign, and the
// zero interval renders as "PT0S".
func (v Value) ISO8601String() string {
	var sb strings.Builder
	sb.WriteByte('P')
	if year := v.Months / MonthsPerYear; year != 0 {
		sb.WriteString(strconv.FormatInt(int64(year), 10))
		sb.WriteByte('Y')
	}
	if month := v.Months % MonthsPerYear; month != 0 {
		sb.WriteString(strconv.FormatInt(int64(month), 10))
		sb.WriteByte('M')
	}
	if v.Days != 0 {
		sb.WriteString(strconv.FormatInt(int64(v.Days), 10))
		sb.WriteByte('D')
	}
	if v.Micros != 0 {
		sb.WriteByte('T')
		rest := v.Micros
		if hour := rest / MicrosPerHour; hour != 0 {
			sb.WriteString(strconv.FormatInt(hour, 10))
			sb.WriteByte('H')
		}
		rest %= MicrosPerHour
		if minute := rest / MicrosPerMinute; minute != 0 {
			sb.WriteString(strconv.FormatInt(minute, 10))
			sb.WriteByte('M')
		}
		rest %= MicrosPerMinute
		if rest != 0 {
			sb.WriteString(secondsString(rest))
			sb.WriteByte('S')
		}
	} else if v.Months == 0 && v.Days == 0 {
		sb.WriteString("T0S")
	}
	return sb.String()
}

// secondsString renders a microsecond count as decimal seconds with
// trailing zeros removed, e.g. 4_500_000 becomes "4.5" and 4_000_000
// becomes "4".
func secondsString(micros int64) string {
	d := apd.New(micros, -6)
	d.Reduce(d)
	return d.Text('f')
}

// MakeInterval builds an interval from spelled out parts, folding years
// into months and weeks into days. The seconds decimal may carry
// microsecond precision; finer digits are rounded half up. A nil secs
// counts as zero seconds.
func MakeInterval(years, months, weeks, days, hours, mins int32, secs *apd.Decimal) (Value, error) {
	yearMonths, ok := overflow.Mul[int32](years, MonthsPerYear)
	var totalMonths int32
	if ok {
		totalMonths, ok = overflow.Add[int32](months, yearMonths)
	}
	if !ok {
		return Value{}, &OverflowError{Op: "fold years into months"}
	}
	weekDays, ok := overflow.Mul[int32](weeks, DaysPerWeek)
	var totalDays int32
	if ok {
		totalDays, ok = overflow.Add[int32](days, weekDays)
	}
	if !ok {
		return Value{}, &OverflowError{Op: "fold weeks into days"}
	}
	micros, err := secondsToMicros(secs)
	if err != nil {
		return Value{}, err
	}
	hourMicros, ok := overflow.Mul[int64](int64(hours), MicrosPerHour)
	if ok {
		micros, ok = overflow.Add[int64](micros, hourMicros)
	}
	var minMicros int64
	if ok {
		minMicros, ok = overflow.Mul[int64](int64(mins), MicrosPerMinute)
	}
	if ok {
		micros, ok = overflow.Add[int64](micros, minMicros)
	}
	if !ok {
		return Value{}, &OverflowError{Op: "fold time fields"}
	}
	return Value{Months: totalMonths, Days: totalDays, Micros: micros}, nil
}

// secondsToMicros quantizes a seconds decimal to microsecond scale and
// shifts it into a whole microsecond count.
func secondsToMicros(secs *apd.Decimal) (int64, error) {
	if secs == nil {
		return 0, nil
	}
	ctx := apd.BaseContext.WithPrecision(decimalPrecision)
	ctx.Rounding = apd.RoundHalfUp
	var q apd.Decimal
	if _, err := ctx.Quantize(&q, secs, -6); err != nil {
		return 0, &OverflowError{Op: "fold seconds into microseconds"}
	}
	q.Exponent += 6
	micros, err := q.Int64()
	if err != nil {
		return 0, &OverflowError{Op: "fold seconds into microseconds"}
	}
	return micros, nil
}
