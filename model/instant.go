package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// ID is an opaque record identifier. The tracker API emits both strings and
// numbers, so the codec accepts either; comparisons always happen on the
// string form.
type ID string

func (id ID) String() string { return string(id) }

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id *ID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Instant is a point in time as the tracker API represents it. The API is not
// consistent: competition dates arrive as epoch milliseconds while fixture
// kick-off times arrive as RFC3339 strings. Both decode; encoding is always
// RFC3339 in UTC.
type Instant struct {
	time.Time
}

func NewInstant(t time.Time) Instant { return Instant{t.UTC()} }

func (i Instant) MarshalJSON() ([]byte, error) {
	if i.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(i.UTC().Format(time.RFC3339))
}

func (i *Instant) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		i.Time = time.Time{}
		return nil
	}
	var millis int64
	if err := json.Unmarshal(b, &millis); err == nil {
		i.Time = time.UnixMilli(millis).UTC()
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("instant must be an RFC3339 string or epoch millis: %w", err)
	}
	if s == "" {
		i.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("error parsing instant %q: %w", s, err)
	}
	i.Time = t.UTC()
	return nil
}
