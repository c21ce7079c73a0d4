package model

import (
	"fmt"
	"strings"
	"time"
)

// LocalTimeLayout is the wire format for all entity timestamps.
const LocalTimeLayout = "2006-01-02T15:04:05"

// LocalTime is a timestamp serialized without zone offset, matching the
// yyyy-MM-ddTHH:mm:ss format of the public API contract.
type LocalTime struct {
	time.Time
}

// NewLocalTime wraps a time.Time into a LocalTime.
func NewLocalTime(t time.Time) LocalTime {
	return LocalTime{Time: t}
}

// Now returns the current moment as a LocalTime.
func Now() LocalTime {
	return LocalTime{Time: time.Now()}
}

// MarshalJSON renders the timestamp in the API wire format.
func (lt LocalTime) MarshalJSON() ([]byte, error) {
	if lt.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + lt.Format(LocalTimeLayout) + `"`), nil
}

// UnmarshalJSON accepts the API wire format and, for convenience, RFC 3339.
func (lt *LocalTime) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		lt.Time = time.Time{}
		return nil
	}

	parsed, err := time.Parse(LocalTimeLayout, raw)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q: %w", raw, err)
		}
	}

	lt.Time = parsed
	return nil
}
