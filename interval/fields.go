package interval

import "github.com/cockroachdb/apd/v3"

// Month expansion used only by Epoch: a 365.25 day year, and a twelfth of
// that per month.
const (
	epochMicrosPerYear  int64 = 36525 * MicrosPerDay / 100
	epochMicrosPerMonth int64 = epochMicrosPerYear / MonthsPerYear
)

// The extractors below are pure projections of single fields. Division
// truncates toward zero, so negative intervals yield negative components.

// Years returns the whole years of the months field.
func (v Value) Years() int32 {
	return v.Months / MonthsPerYear
}

// Millennia returns the whole thousands of years.
func (v Value) Millennia() int32 {
	return v.Years() / 1000
}

// Centuries returns the whole hundreds of years.
func (v Value) Centuries() int32 {
	return v.Years() / 100
}

// Decades returns the whole tens of years.
func (v Value) Decades() int32 {
	return v.Years() / 10
}

// MonthOfYear returns the months left after extracting whole years.
func (v Value) MonthOfYear() int32 {
	return v.Months % MonthsPerYear
}

// Quarter returns MonthOfYear()/3 + 1. The formula is kept exactly as the
// SQL layer defines it: the zero interval is in quarter 1 and negative
// month counts produce non-positive quarters.
func (v Value) Quarter() int32 {
	return v.MonthOfYear()/3 + 1
}

// Hours returns the whole hours of the microseconds field.
func (v Value) Hours() int64 {
	return v.Micros / MicrosPerHour
}

// MinutesOfHour returns the whole minutes left after extracting hours.
func (v Value) MinutesOfHour() int64 {
	return (v.Micros % MicrosPerHour) / MicrosPerMinute
}

// MicrosOfMinute returns the microseconds left after extracting minutes.
func (v Value) MicrosOfMinute() int64 {
	return v.Micros % MicrosPerMinute
}

// SecondsOfMinute returns the seconds within the minute as an exact scale 6
// decimal, preserving the microsecond fraction.
func (v Value) SecondsOfMinute() *apd.Decimal {
	return apd.New(v.MicrosOfMinute(), -6)
}

// MillisOfMinute returns the milliseconds within the minute as an exact
// scale 3 decimal.
func (v Value) MillisOfMinute() *apd.Decimal {
	return apd.New(v.MicrosOfMinute(), -3)
}

// Epoch returns the interval's total seconds as a scale 6 decimal, with
// months expanded at 365.25 days per year and a twelfth of that per month.
// This is an estimate by construction; the two calendar fields have no
// exact length in seconds.
func (v Value) Epoch() *apd.Decimal {
	total := v.Micros
	total += MicrosPerDay * int64(v.Days)
	total += epochMicrosPerYear * int64(v.Months/MonthsPerYear)
	total += epochMicrosPerMonth * int64(v.Months%MonthsPerYear)
	return apd.New(total, -6)
}
