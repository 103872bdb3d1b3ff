package weekgrid

import (
	"fmt"
	"strings"
)

// Day is a weekday column of the grid.
type Day int

const (
	Mon Day = iota
	Tue
	Wed
	Thu
	Fri
)

// Days lists the grid columns in display order.
var Days = [5]Day{Mon, Tue, Wed, Thu, Fri}

var dayLabels = [5]string{"Mon", "Tue", "Wed", "Thu", "Fri"}

func (d Day) String() string {
	if d.Valid() {
		return dayLabels[d]
	}
	return fmt.Sprintf("Day(%d)", int(d))
}

// Short is the two-letter code used by the outlines API ("Mo", "Tu", ...).
func (d Day) Short() string {
	if !d.Valid() {
		return d.String()
	}
	return dayLabels[d][:2]
}

func (d Day) Valid() bool {
	return d >= Mon && d <= Fri
}

// ParseDay accepts two-letter codes, three-letter labels and full names, case-insensitively.
func ParseDay(s string) (Day, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Days {
		label := strings.ToLower(dayLabels[d])
		if v == label || v == label[:2] || v == strings.ToLower(fullNames[d]) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDay, s)
}

var fullNames = [5]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func (d Day) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDay, int(d))
	}
	return []byte(d.String()), nil
}

func (d *Day) UnmarshalText(b []byte) error {
	v, err := ParseDay(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
