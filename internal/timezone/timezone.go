package timezone

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var (
	WIB  = time.FixedZone("WIB", 7*60*60)  // UTC+7 - Western Indonesia
	WITA = time.FixedZone("WITA", 8*60*60) // UTC+8 - Central Indonesia
	WIT  = time.FixedZone("WIT", 9*60*60)  // UTC+9 - Eastern Indonesia
	IST  = time.FixedZone("IST", 5*60*60+30*60)
)

// Resolve maps a configured zone name to a location. Empty and "Local"
// select the process zone.
func Resolve(name string) (*time.Location, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "LOCAL":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	case "WIB", "UTC+7":
		return WIB, nil
	case "WITA", "UTC+8":
		return WITA, nil
	case "WIT", "UTC+9":
		return WIT, nil
	case "IST", "UTC+5:30":
		return IST, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

// Clock supplies the current instant in a fixed location. Now is a field so
// tests can pin it.
type Clock struct {
	Location *time.Location
	Now      func() time.Time
}

func NewClock(loc *time.Location) *Clock {
	if loc == nil {
		loc = time.Local
	}
	return &Clock{Location: loc, Now: time.Now}
}

func (c *Clock) Current() time.Time {
	return c.Now().In(c.Location)
}

// Today returns midnight of the current calendar day in the clock's location.
func (c *Clock) Today() time.Time {
	return StartOfDay(c.Current())
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDate parses a YYYY-MM-DD calendar date at midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
