package interval_test

import (
	"errors"
	"math"
	"testing"

	"github.com/lagoonql/interval-toolbox-go/interval"
)

func TestJustifyDays(t *testing.T) {
	tests := []struct {
		name string
		v    interval.Value
		want interval.Value
	}{
		{
			name: "fold whole months",
			v:    interval.Value{Days: 65},
			want: interval.Value{Months: 2, Days: 5},
		},
		{
			name: "negative days",
			v:    interval.Value{Days: -65},
			want: interval.Value{Months: -2, Days: -5},
		},
		{
			name: "remainder keeps day sign",
			v:    interval.Value{Months: 1, Days: -65},
			want: interval.Value{Months: -1, Days: -5},
		},
		{
			name: "micros untouched",
			v:    interval.Value{Days: 30, Micros: 42},
			want: interval.Value{Months: 1, Micros: 42},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.JustifyDays()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("JustifyDays() = %v, want %v", got, tt.want)
			}
			again, err := got.JustifyDays()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if again != got {
				t.Errorf("JustifyDays() twice = %v, want %v", again, got)
			}
		})
	}

	_, err := interval.Value{Months: math.MaxInt32, Days: math.MaxInt32}.JustifyDays()
	var overflowErr *interval.OverflowError
	if !errors.As(err, &overflowErr) {
		t.Errorf("overflowing fold error = %v, want *OverflowError", err)
	}
}

func TestJustifyHours(t *testing.T) {
	tests := []struct {
		name string
		v    interval.Value
		want interval.Value
	}{
		{
			name: "fold whole days",
			v:    interval.Value{Micros: 100 * interval.MicrosPerHour},
			want: interval.Value{Days: 4, Micros: 4 * interval.MicrosPerHour},
		},
		{
			name: "negative micros",
			v:    interval.Value{Micros: -100 * interval.MicrosPerHour},
			want: interval.Value{Days: -4, Micros: -4 * interval.MicrosPerHour},
		},
		{
			name: "opposite signs cancel",
			v:    interval.Value{Days: 1, Micros: -1 * interval.MicrosPerHour},
			want: interval.Value{Micros: 23 * interval.MicrosPerHour},
		},
		{
			name: "months untouched",
			v:    interval.Value{Months: 7, Micros: 25 * interval.MicrosPerHour},
			want: interval.Value{Months: 7, Days: 1, Micros: 1 * interval.MicrosPerHour},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.JustifyHours()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("JustifyHours() = %v, want %v", got, tt.want)
			}
		})
	}

	_, err := interval.Value{Days: math.MaxInt32, Micros: math.MaxInt64}.JustifyHours()
	var overflowErr *interval.OverflowError
	if !errors.As(err, &overflowErr) {
		t.Errorf("overflowing fold error = %v, want *OverflowError", err)
	}
}

func TestJustifyInterval(t *testing.T) {
	tests := []struct {
		name string
		v    interval.Value
		want interval.Value
	}{
		{
			name: "one month minus thirty days is zero",
			v:    interval.Value{Months: 1, Days: -30},
			want: interval.Value{},
		},
		{
			name: "months expand before the split",
			v:    interval.Value{Months: 1, Days: -5},
			want: interval.Value{Days: 25},
		},
		{
			name: "sign mixed time settles",
			v:    interval.Value{Days: 35, Micros: -10 * interval.MicrosPerHour},
			want: interval.Value{Months: 1, Days: 4, Micros: 14 * interval.MicrosPerHour},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.JustifyInterval()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("JustifyInterval() = %v, want %v", got, tt.want)
			}
		})
	}

	// The two step sequence keeps the negative day remainder that the
	// single pass redistributes.
	v := interval.Value{Months: 1, Days: -5}
	stepped, err := v.JustifyDays()
	if err == nil {
		stepped, err = stepped.JustifyHours()
	}
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	single, err := v.JustifyInterval()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stepped == single {
		t.Errorf("JustifyDays+JustifyHours = %v, expected to differ from JustifyInterval = %v", stepped, single)
	}

	_, err = interval.Value{Months: math.MaxInt32}.JustifyInterval()
	var overflowErr *interval.OverflowError
	if !errors.As(err, &overflowErr) {
		t.Errorf("overflowing fold error = %v, want *OverflowError", err)
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name         string
		v            interval.Value
		target       interval.Unit
		daysPerMonth int32
		want         int64
	}{
		{
			name:         "microseconds",
			v:            interval.New(1, 1, 1),
			target:       interval.UnitMicrosecond,
			daysPerMonth: 31,
			want:         2_764_800_000_001,
		},
		{
			name:         "nanoseconds",
			v:            interval.New(1, 1, 1),
			target:       interval.UnitNanosecond,
			daysPerMonth: 31,
			want:         2_764_800_000_001_000,
		},
		{
			name:         "hours truncate",
			v:            interval.New(1, 1, 1),
			target:       interval.UnitHour,
			daysPerMonth: 31,
			want:         768,
		},
		{
			name:         "days",
			v:            interval.New(1, 1, 1),
			target:       interval.UnitDay,
			daysPerMonth: 31,
			want:         32,
		},
		{
			name:         "thirty day policy",
			v:            interval.Value{Months: 1},
			target:       interval.UnitSecond,
			daysPerMonth: 30,
			want:         2_592_000,
		},
		{
			name:         "milliseconds",
			v:            interval.Value{Micros: 12_345},
			target:       interval.UnitMillisecond,
			daysPerMonth: 31,
			want:         12,
		},
		{
			name:         "negative truncates toward zero",
			v:            interval.Value{Micros: -1_500_000},
			target:       interval.UnitSecond,
			daysPerMonth: 31,
			want:         -1,
		},
		{
			name:         "minutes",
			v:            interval.Value{Micros: 150 * interval.MicrosPerSecond},
			target:       interval.UnitMinute,
			daysPerMonth: 31,
			want:         2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.Duration(tt.target, tt.daysPerMonth)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Duration(%s, %d) = %d, want %d", tt.target, tt.daysPerMonth, got, tt.want)
			}
		})
	}
}

func TestDurationErrors(t *testing.T) {
	v := interval.New(1, 1, 1)

	for _, target := range []interval.Unit{interval.UnitWeek, interval.UnitMonth, interval.UnitYear} {
		_, err := v.Duration(target, interval.DefaultDaysPerMonth)
		var convErr *interval.ConversionError
		if !errors.As(err, &convErr) {
			t.Fatalf("Duration(%s) error = %v, want *ConversionError", target, err)
		}
	}
	_, err := v.Duration(interval.UnitMonth, interval.DefaultDaysPerMonth)
	if want := "cannot convert interval duration from microsecond to month"; err == nil || err.Error() != want {
		t.Errorf("Error() = %v, want %q", err, want)
	}

	_, err = interval.Value{Months: math.MaxInt32}.Duration(interval.UnitMicrosecond, interval.DefaultDaysPerMonth)
	var overflowErr *interval.OverflowError
	if !errors.As(err, &overflowErr) {
		t.Errorf("overflowing months error = %v, want *OverflowError", err)
	}

	_, err = interval.Value{Micros: math.MaxInt64}.Duration(interval.UnitNanosecond, interval.DefaultDaysPerMonth)
	if !errors.As(err, &overflowErr) {
		t.Errorf("overflowing nanoseconds error = %v, want *OverflowError", err)
	}
}

func TestIsNegative(t *testing.T) {
	tests := []struct {
		name         string
		v            interval.Value
		daysPerMonth int32
		want         bool
	}{
		{
			name:         "positive",
			v:            interval.Value{Micros: 1},
			daysPerMonth: 31,
			want:         false,
		},
		{
			name:         "negative",
			v:            interval.Value{Micros: -1},
			daysPerMonth: 31,
			want:         true,
		},
		{
			name:         "negative month",
			v:            interval.Value{Months: -1},
			daysPerMonth: 31,
			want:         true,
		},
		{
			name:         "month cancels days under upper bound policy",
			v:            interval.Value{Months: 1, Days: -31},
			daysPerMonth: 31,
			want:         false,
		},
		{
			name:         "same interval under thirty day policy",
			v:            interval.Value{Months: 1, Days: -31},
			daysPerMonth: 30,
			want:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.IsNegative(tt.daysPerMonth)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsNegative(%d) = %v, want %v", tt.daysPerMonth, got, tt.want)
			}
		})
	}

	_, err := interval.Value{Months: math.MaxInt32}.IsNegative(interval.DefaultDaysPerMonth)
	if err == nil {
		t.Error("Expected error but got nil")
	}
}
