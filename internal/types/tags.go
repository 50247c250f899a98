package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Tags is an ordered list of free-form labels.
//
// In the database, the list is stored as a single text column with
// the tags joined by ", ".
type Tags []string

// NewTags returns the tags with surrounding whitespace removed and
// empty entries dropped.
func NewTags(tags ...string) Tags {
	t := make(Tags, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		t = append(t, tag)
	}

	return t
}

// ParseTags splits a comma separated string into Tags.
func ParseTags(s string) Tags {
	if strings.TrimSpace(s) == "" {
		return Tags{}
	}

	return NewTags(strings.Split(s, ",")...)
}

// String returns the tags joined by ", ".
func (t Tags) String() string {
	return strings.Join(t, ", ")
}

// MarshalJSON implements the json.Marshaler interface.
// A nil list is encoded as an empty array.
func (t Tags) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}

	return json.Marshal([]string(t))
}

// Scan writes the value from the database.
func (t *Tags) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*t = ParseTags(v)
	case []byte:
		*t = ParseTags(string(v))
	case nil:
		*t = Tags{}
	default:
		return fmt.Errorf("cannot scan %T into tags", value)
	}

	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (t Tags) Value() (driver.Value, error) {
	if len(t) == 0 {
		return nil, nil
	}

	return t.String(), nil
}

// GormDataType defines the data type used by gorm the type.
func (Tags) GormDataType() string {
	return "text"
}
