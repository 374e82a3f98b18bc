package storage

import (
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayouts are the formats check-in and payment dates arrive in.
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseAmount coerces a stored currency value to a decimal.
// Empty or non-numeric values become zero and are logged.
func ParseAmount(raw, field, recordID string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		slog.Warn("Malformed amount coerced to zero",
			"field", field,
			"record_id", recordID,
			"value", raw,
		)
		return decimal.Zero
	}
	return d
}

// ParseDate reads a stored date as a calendar date in loc. Unparseable values
// return the zero time, which keeps the record out of date-based bucketing.
func ParseDate(raw, field, recordID string, loc *time.Location) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		slog.Warn("Missing date", "field", field, "record_id", recordID)
		return time.Time{}
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t.In(loc)
		}
	}
	slog.Warn("Malformed date skipped",
		"field", field,
		"record_id", recordID,
		"value", raw,
	)
	return time.Time{}
}
