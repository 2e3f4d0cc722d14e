package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire and storage format for calendar dates.
const dateLayout = "2006-01-02"

// Date is a wrapper around time.Time that serializes as a plain calendar
// date ("yyyy-mm-dd") in JSON and scans from DATE columns.
type Date struct {
	time.Time
}

// NewDate constructs a Date from year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON renders the date as a quoted "yyyy-mm-dd" string.
// The zero value renders as JSON null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON parses a quoted "yyyy-mm-dd" string or JSON null.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}

	*d = Date{t}
	return nil
}

// Scan implements sql.Scanner so a Date can be read from a DATE column.
func (d *Date) Scan(src any) error {
	switch value := src.(type) {
	case time.Time:
		*d = Date{value}
		return nil
	case string:
		t, err := time.Parse(dateLayout, value)
		if err != nil {
			return fmt.Errorf("scanning date %q: %w", value, err)
		}
		*d = Date{t}
		return nil
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Value implements driver.Valuer so a Date can be bound as a DATE parameter.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}
