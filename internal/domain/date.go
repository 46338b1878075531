package domain

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// dateLayout is the short calendar form accepted on input, e.g. "2000-01-01".
const dateLayout = "2006-01-02"

// Date is a calendar date used for user birthdays. Clients send either a
// plain "YYYY-MM-DD" string or a full RFC 3339 timestamp; responses always
// carry RFC 3339 so the wire format matches what the document store returns.
type Date struct {
	time.Time
}

// NewDate builds a Date from a time.Time, truncated to UTC.
func NewDate(t time.Time) Date {
	return Date{Time: t.UTC()}
}

// ParseDate parses a date from its string form, accepting both the short
// calendar layout and RFC 3339.
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return Date{Time: t.UTC()}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: birthday must be YYYY-MM-DD or RFC 3339", ErrValidation)
	}
	return Date{Time: t.UTC()}, nil
}

// MarshalJSON renders the date as an RFC 3339 string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.UTC().Format(time.RFC3339) + `"`), nil
}

// UnmarshalJSON accepts both "YYYY-MM-DD" and RFC 3339 strings.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalBSONValue stores the date as a native BSON datetime.
func (d Date) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(d.Time)
}

// UnmarshalBSONValue reads the date back from a BSON datetime.
func (d *Date) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	return bson.UnmarshalValue(t, data, &d.Time)
}
