// Package types implements value types shared by the models and the API.
package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")

// Date is a calendar date without time of day or location.
type Date time.Time

// NewDate returns the Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Date on which t occurs in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// ParseDate parses a string in YYYY-MM-DD format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}

	return Date(t), nil
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format(dateLayout)
}

// Month returns the Month the date is in.
func (d Date) Month() Month {
	return MonthOf(time.Time(d))
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Before reports whether d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Only the YYYY-MM-DD format is accepted.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "null" {
		return nil
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Scan writes the value from the database.
//
// Depending on the column declaration, the driver hands over the stored
// text or an already parsed time.Time.
func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case time.Time:
		*d = DateOf(v.UTC())
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	case nil:
		*d = Date{}
		return nil
	}

	return fmt.Errorf("cannot scan %T into a date", value)
}

func (d *Date) scanString(s string) error {
	if len(s) < len(dateLayout) {
		return ErrInvalidDate
	}

	parsed, err := ParseDate(s[:len(dateLayout)])
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Value returns the value for the SQL driver to write to the database.
//
// Dates are stored as YYYY-MM-DD text so that range comparisons in SQL
// work lexically.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// GormDataType defines the data type used by gorm the type.
func (Date) GormDataType() string {
	return "date"
}
