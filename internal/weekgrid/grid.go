// Package weekgrid lays out a week of class meetings as a Mon..Fri grid.
//
// Every populated cell is padded so that time blocks line up by start hour
// across the week: a meeting starting two hours after the earliest meeting
// sits two lines lower. Minutes are printed in the labels but never move a
// block.
package weekgrid

import (
	"fmt"
	"strings"
)

// Meeting is one weekly class session on a single weekday.
type Meeting struct {
	Day         Day    `json:"day" yaml:"day"`
	Location    string `json:"location" yaml:"location"`
	Start       string `json:"start" yaml:"start"`
	End         string `json:"end" yaml:"end"`
	SectionCode string `json:"section_code,omitempty" yaml:"section_code,omitempty"`
}

// DuplicatePolicy decides what happens when two meetings fall on the same day.
type DuplicatePolicy int

const (
	// LastWins keeps the meeting supplied last.
	LastWins DuplicatePolicy = iota
	// RejectDuplicates fails the build with ErrDuplicateDay.
	RejectDuplicates
)

func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "last":
		return LastWins, nil
	case "reject":
		return RejectDuplicates, nil
	}
	return 0, fmt.Errorf("unknown duplicate-day policy %q (want last or reject)", s)
}

func (p DuplicatePolicy) String() string {
	if p == RejectDuplicates {
		return "reject"
	}
	return "last"
}

// Cell is a populated grid column.
type Cell struct {
	Meeting Meeting  `json:"meeting" yaml:"meeting"`
	Start   Clock    `json:"start" yaml:"start"`
	End     Clock    `json:"end" yaml:"end"`
	Padding int      `json:"padding" yaml:"padding"`
	Height  int      `json:"height" yaml:"height"`
	Lines   []string `json:"lines" yaml:"lines"`
}

// Text joins the cell lines for a table renderer.
func (c *Cell) Text() string {
	if c == nil {
		return ""
	}
	return strings.Join(c.Lines, "\n")
}

// BlockStart is the index in Lines of the start label.
func (c *Cell) BlockStart() int {
	return 1 + c.Padding
}

// Grid is a single row of five weekday cells. A nil cell is a free day.
type Grid struct {
	EarliestHour int      `json:"earliest_hour" yaml:"earliest_hour"`
	Cells        [5]*Cell `json:"cells" yaml:"cells"`
}

// Columns returns the column labels in display order.
func (g *Grid) Columns() [5]string {
	return dayLabels
}

func (g *Grid) Cell(d Day) *Cell {
	if !d.Valid() {
		return nil
	}
	return g.Cells[d]
}

// Depth is the line count of the tallest cell.
func (g *Grid) Depth() int {
	n := 0
	for _, c := range g.Cells {
		if c != nil && len(c.Lines) > n {
			n = len(c.Lines)
		}
	}
	return n
}

// Build lays the meetings out on a grid. It returns a nil grid and a nil
// error when there are no meetings; callers must treat that as "no schedule".
// Any bad meeting fails the whole build.
func Build(meetings []Meeting, policy DuplicatePolicy) (*Grid, error) {
	if len(meetings) == 0 {
		return nil, nil
	}

	cells := make([]Cell, len(meetings))
	earliest := 24
	for i, m := range meetings {
		if !m.Day.Valid() {
			return nil, &MeetingError{Index: i, Meeting: m, Err: ErrInvalidDay}
		}
		start, err := ParseClock(m.Start)
		if err != nil {
			return nil, &MeetingError{Index: i, Meeting: m, Err: err}
		}
		end, err := ParseClock(m.End)
		if err != nil {
			return nil, &MeetingError{Index: i, Meeting: m, Err: err}
		}
		if !start.Before(end) {
			return nil, &MeetingError{Index: i, Meeting: m, Err: ErrInvertedRange}
		}
		cells[i] = Cell{Meeting: m, Start: start, End: end, Height: end.Hour - start.Hour}
		if start.Hour < earliest {
			earliest = start.Hour
		}
	}

	g := &Grid{EarliestHour: earliest}
	for i := range cells {
		c := &cells[i]
		if g.Cells[c.Meeting.Day] != nil && policy == RejectDuplicates {
			return nil, &MeetingError{Index: i, Meeting: c.Meeting, Err: ErrDuplicateDay}
		}
		c.Padding = c.Start.Hour - earliest
		c.Lines = layout(c)
		g.Cells[c.Meeting.Day] = c
	}
	return g, nil
}

func layout(c *Cell) []string {
	lines := make([]string, 0, 3+c.Padding+c.Height)
	lines = append(lines, c.Meeting.Location)
	for i := 0; i < c.Padding; i++ {
		lines = append(lines, "")
	}
	lines = append(lines, c.Start.String())
	for i := 0; i < c.Height; i++ {
		lines = append(lines, "")
	}
	return append(lines, c.End.String())
}
