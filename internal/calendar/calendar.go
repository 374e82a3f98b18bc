// Package calendar buckets dates into settlement months and enumerates
// month ranges.
package calendar

import (
	"fmt"
	"time"
)

// SettlementAnchor is the first month that settlements are reconciled for.
var SettlementAnchor = YearMonth{Year: 2024, Month: time.November}

// YearMonth identifies one calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// Of returns the month containing t as seen in loc. Bucketing in local time
// keeps a late-evening check-in on the last day of a month from sliding into
// the next month when t is stored in UTC.
func Of(t time.Time, loc *time.Location) YearMonth {
	if loc != nil {
		t = t.In(loc)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// Key renders the month as "YYYY-MM", the settlement status key.
func (ym YearMonth) Key() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

func (ym YearMonth) String() string {
	return ym.Key()
}

// ParseKey parses a "YYYY-MM" month key.
func ParseKey(key string) (YearMonth, error) {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// Valid reports whether the month number is within 1..12 and the year has
// at most four digits, so that keys order the same way as months.
func (ym YearMonth) Valid() bool {
	return ym.Year >= 1 && ym.Year <= 9999 &&
		ym.Month >= time.January && ym.Month <= time.December
}

// index counts months since year 0 so that months compare as integers.
func (ym YearMonth) index() int {
	return ym.Year*12 + int(ym.Month) - 1
}

func fromIndex(i int) YearMonth {
	return YearMonth{Year: i / 12, Month: time.Month(i%12 + 1)}
}

// Before reports whether ym is strictly earlier than other.
func (ym YearMonth) Before(other YearMonth) bool {
	return ym.index() < other.index()
}

// AddMonths returns the month n months after ym (n may be negative).
func (ym YearMonth) AddMonths(n int) YearMonth {
	return fromIndex(ym.index() + n)
}

// Contains reports whether t falls within the month in loc.
func (ym YearMonth) Contains(t time.Time, loc *time.Location) bool {
	return Of(t, loc) == ym
}

// Range is an inclusive span of months.
type Range struct {
	From YearMonth
	To   YearMonth
}

// Len returns the number of months in the range, or 0 when To precedes From.
func (r Range) Len() int {
	n := r.To.index() - r.From.index() + 1
	if n < 0 {
		return 0
	}
	return n
}

// Months enumerates the range in ascending order with no gaps.
func (r Range) Months() []YearMonth {
	n := r.Len()
	months := make([]YearMonth, 0, n)
	for i := 0; i < n; i++ {
		months = append(months, r.From.AddMonths(i))
	}
	return months
}

// SettlementWindow returns the range from SettlementAnchor through the month
// containing now in loc.
func SettlementWindow(now time.Time, loc *time.Location) Range {
	return Range{From: SettlementAnchor, To: Of(now, loc)}
}
