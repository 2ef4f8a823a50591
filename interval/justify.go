package interval

import (
	"github.com/lagoonql/interval-toolbox-go/interval/internal/overflow"
)

// JustifyDays folds whole 30 day blocks of the days field into months. The
// day remainder keeps the sign of the days field; microseconds are
// untouched.
func (v Value) JustifyDays() (Value, error) {
	months, ok := overflow.Add[int32](v.Months, v.Days/DaysPerMonth)
	if !ok {
		return Value{}, &OverflowError{Op: "justify days"}
	}
	return Value{Months: months, Days: v.Days % DaysPerMonth, Micros: v.Micros}, nil
}

// JustifyHours folds whole 24 hour blocks of the microseconds field into
// days, after first expanding the existing days at 24 hours per day so that
// opposite signs cancel. Months are untouched.
func (v Value) JustifyHours() (Value, error) {
	dayMicros, ok := overflow.Mul[int64](int64(v.Days), MicrosPerDay)
	var total int64
	if ok {
		total, ok = overflow.Add[int64](v.Micros, dayMicros)
	}
	if !ok {
		return Value{}, &OverflowError{Op: "justify hours"}
	}
	return Value{
		Months: v.Months,
		Days:   int32(total / MicrosPerDay),
		Micros: total % MicrosPerDay,
	}, nil
}

// JustifyInterval redistributes across both field boundaries in a single
// pass: months and days are expanded into one microsecond total (30 days
// per month, 24 hours per day), the total is split back into whole days and
// a microsecond remainder, and the whole days are split into months and a
// day remainder.
//
// This is not JustifyDays composed with JustifyHours. The single pass
// expands the original months into the pool before splitting, so sign mixed
// inputs settle differently than under the two step sequence.
func (v Value) JustifyInterval() (Value, error) {
	monthDays, ok := overflow.Mul[int64](int64(v.Months), DaysPerMonth)
	var dayTotal int64
	if ok {
		dayTotal, ok = overflow.Add[int64](monthDays, int64(v.Days))
	}
	var microTotal int64
	if ok {
		microTotal, ok = overflow.Mul[int64](dayTotal, MicrosPerDay)
	}
	if ok {
		microTotal, ok = overflow.Add[int64](microTotal, v.Micros)
	}
	if !ok {
		return Value{}, &OverflowError{Op: "justify interval"}
	}
	splitDays := microTotal / MicrosPerDay
	return Value{
		Months: int32(splitDays / DaysPerMonth),
		Days:   int32(splitDays % DaysPerMonth),
		Micros: microTotal % MicrosPerDay,
	}, nil
}

// Duration estimates the interval's total elapsed time in the target unit,
// valuing every month at daysPerMonth days and every day at 24 hours. The
// estimate truncates toward zero for units coarser than a microsecond.
// Callers sizing watermark delays should pass DefaultDaysPerMonth to keep
// the estimate an upper bound.
//
// Supported targets are UnitNanosecond through UnitDay; weeks, months and
// years have no fixed length at this boundary and return *ConversionError.
func (v Value) Duration(target Unit, daysPerMonth int32) (int64, error) {
	if target > UnitDay {
		return 0, &ConversionError{From: UnitMicrosecond, To: target}
	}
	monthMicros, ok := overflow.Mul[int64](int64(daysPerMonth), MicrosPerDay)
	if ok {
		monthMicros, ok = overflow.Mul[int64](monthMicros, int64(v.Months))
	}
	var dayMicros int64
	if ok {
		dayMicros, ok = overflow.Mul[int64](int64(v.Days), MicrosPerDay)
	}
	var total int64
	if ok {
		total, ok = overflow.Add[int64](dayMicros, monthMicros)
	}
	if ok {
		total, ok = overflow.Add[int64](v.Micros, total)
	}
	if !ok {
		return 0, &OverflowError{Op: "interval duration"}
	}
	switch target {
	case UnitNanosecond:
		nanos, ok := overflow.Mul[int64](total, NanosPerMicro)
		if !ok {
			return 0, &OverflowError{Op: "interval duration"}
		}
		return nanos, nil
	case UnitMicrosecond:
		return total, nil
	case UnitMillisecond:
		return total / MicrosPerMilli, nil
	case UnitSecond:
		return total / MicrosPerSecond, nil
	case UnitMinute:
		return total / MicrosPerMinute, nil
	case UnitHour:
		return total / MicrosPerHour, nil
	default:
		return total / MicrosPerDay, nil
	}
}

// IsNegative reports whether the interval's duration estimate is negative,
// with months valued at daysPerMonth days.
func (v Value) IsNegative(daysPerMonth int32) (bool, error) {
	d, err := v.Duration(UnitMicrosecond, daysPerMonth)
	if err != nil {
		return false, err
	}
	return d < 0, nil
}
