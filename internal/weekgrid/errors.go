package weekgrid

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedTime means a start or end value is not a valid HH:MM time of day.
	ErrMalformedTime = errors.New("malformed meeting time")
	// ErrInvertedRange means a meeting does not start before it ends.
	ErrInvertedRange = errors.New("meeting start is not before its end")
	// ErrInvalidDay means a meeting day is not one of Mon..Fri.
	ErrInvalidDay = errors.New("invalid meeting day")
	// ErrDuplicateDay is returned under RejectDuplicates when two meetings share a weekday.
	ErrDuplicateDay = errors.New("more than one meeting on the same day")
)

// MeetingError ties a build failure to the meeting that caused it.
type MeetingError struct {
	Index   int
	Meeting Meeting
	Err     error
}

func (e *MeetingError) Error() string {
	return fmt.Sprintf("meeting %d (%s %s-%s): %v", e.Index, e.Meeting.Day, e.Meeting.Start, e.Meeting.End, e.Err)
}

func (e *MeetingError) Unwrap() error {
	return e.Err
}
