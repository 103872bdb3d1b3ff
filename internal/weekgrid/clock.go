package weekgrid

import (
	"fmt"
	"strings"
	"time"
)

// Clock is a wall-clock time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

var clockLayouts = []string{"15:04", "15:04:05"}

// ParseClock reads "HH:MM" (seconds are tolerated and dropped).
func ParseClock(s string) (Clock, error) {
	v := strings.TrimSpace(s)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
		}
	}
	return Clock{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c Clock) Before(o Clock) bool {
	return c.Hour*60+c.Minute < o.Hour*60+o.Minute
}

func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Clock) UnmarshalText(b []byte) error {
	v, err := ParseClock(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
