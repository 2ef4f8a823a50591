package interval

import (
	"math"

	"github.com/lagoonql/interval-toolbox-go/interval/internal/overflow"
)

// Negate returns the interval with all three fields sign flipped.
func (v Value) Negate() Value {
	return Value{Months: -v.Months, Days: -v.Days, Micros: -v.Micros}
}

// Add returns the field wise sum. Like the non-strict SQL operators it does
// not detect overflow; use AddExact for checked addition.
func (v Value) Add(o Value) Value {
	return Value{
		Months: v.Months + o.Months,
		Days:   v.Days + o.Days,
		Micros: v.Micros + o.Micros,
	}
}

// Subtract returns the field wise difference, without overflow detection.
// Use SubtractExact for checked subtraction.
func (v Value) Subtract(o Value) Value {
	return Value{
		Months: v.Months - o.Months,
		Days:   v.Days - o.Days,
		Micros: v.Micros - o.Micros,
	}
}

// NegateExact is Negate with overflow detection, for the minimum field
// values that have no representable negation.
func (v Value) NegateExact() (Value, error) {
	months, ok := overflow.Sub[int32](0, v.Months)
	var days int32
	if ok {
		days, ok = overflow.Sub[int32](0, v.Days)
	}
	var micros int64
	if ok {
		micros, ok = overflow.Sub[int64](0, v.Micros)
	}
	if !ok {
		return Value{}, &OverflowError{Op: "negate interval"}
	}
	return Value{Months: months, Days: days, Micros: micros}, nil
}

// AddExact is Add with overflow detection on every field.
func (v Value) AddExact(o Value) (Value, error) {
	months, ok := overflow.Add[int32](v.Months, o.Months)
	var days int32
	if ok {
		days, ok = overflow.Add[int32](v.Days, o.Days)
	}
	var micros int64
	if ok {
		micros, ok = overflow.Add[int64](v.Micros, o.Micros)
	}
	if !ok {
		return Value{}, &OverflowError{Op: "add intervals"}
	}
	return Value{Months: months, Days: days, Micros: micros}, nil
}

// SubtractExact is Subtract with overflow detection on every field.
func (v Value) SubtractExact(o Value) (Value, error) {
	months, ok := overflow.Sub[int32](v.Months, o.Months)
	var days int32
	if ok {
		days, ok = overflow.Sub[int32](v.Days, o.Days)
	}
	var micros int64
	if ok {
		micros, ok = overflow.Sub[int64](v.Micros, o.Micros)
	}
	if !ok {
		return Value{}, &OverflowError{Op: "subtract intervals"}
	}
	return Value{Months: months, Days: days, Micros: micros}, nil
}

// Multiply scales all three fields by num. Fractional remainders cascade
// into the finer fields: a fractional month becomes days at 30 days per
// month, a fractional day becomes microseconds at 24 hours per day, and the
// final microsecond total is rounded half away from zero.
func (v Value) Multiply(num float64) (Value, error) {
	return fromFloats(num*float64(v.Months), num*float64(v.Days), num*float64(v.Micros))
}

// Divide scales all three fields by 1/num, with the same remainder cascade
// as Multiply. A zero num returns ErrDivideByZero before any computation.
func (v Value) Divide(num float64) (Value, error) {
	if num == 0 {
		return Value{}, ErrDivideByZero
	}
	return fromFloats(float64(v.Months)/num, float64(v.Days)/num, float64(v.Micros)/num)
}

func fromFloats(monthsF, daysF, microsF float64) (Value, error) {
	months, ok := truncInt32(monthsF)
	if !ok {
		return Value{}, &OverflowError{Op: "scale months"}
	}
	daysTotal := daysF + (monthsF-float64(months))*DaysPerMonth
	days, ok := truncInt32(daysTotal)
	if !ok {
		return Value{}, &OverflowError{Op: "scale days"}
	}
	microsTotal := microsF + (daysTotal-float64(days))*MicrosPerDay
	micros, ok := roundInt64(microsTotal)
	if !ok {
		return Value{}, &OverflowError{Op: "scale microseconds"}
	}
	return Value{Months: months, Days: days, Micros: micros}, nil
}

func truncInt32(f float64) (int32, bool) {
	t := math.Trunc(f)
	if math.IsNaN(t) || t < math.MinInt32 || t > math.MaxInt32 {
		return 0, false
	}
	return int32(t), true
}

func roundInt64(f float64) (int64, bool) {
	r := math.Round(f)
	// float64(math.MaxInt64) rounds up to 2^63, which is out of range, so
	// the upper comparison must be strict against that bound.
	if math.IsNaN(r) || r < math.MinInt64 || r >= math.MaxInt64 {
		return 0, false
	}
	return int64(r), true
}
