// Package outline turns raw outline documents into the pieces the renderer
// and the week grid work with.
package outline

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mghazyfawazh/outlines/internal/models"
	"github.com/mghazyfawazh/outlines/internal/weekgrid"
)

var (
	// ErrNotEnoughData is returned for a listing (JSON array) where an outline was expected.
	ErrNotEnoughData = errors.New("not enough data")
	// ErrDecode is returned when a document is not valid outline JSON.
	ErrDecode = errors.New("decode outline")
)

// Parse decodes one outline document.
func Parse(data []byte) (*models.Outline, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return nil, ErrNotEnoughData
	}
	var o models.Outline
	if err := json.Unmarshal(trimmed, &o); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return &o, nil
}

// Meetings expands the weekly course schedule into one meeting per day.
// Exam rows and rows without days are not weekly meetings and are skipped.
func Meetings(o *models.Outline) ([]weekgrid.Meeting, error) {
	if o == nil {
		return nil, nil
	}
	var out []weekgrid.Meeting
	for i, e := range o.CourseSchedule {
		if e.IsExam {
			continue
		}
		days, ok := models.Get(e.Days)
		if !ok || strings.TrimSpace(days) == "" {
			continue
		}
		for _, code := range strings.Split(days, ",") {
			if strings.TrimSpace(code) == "" {
				continue
			}
			d, err := weekgrid.ParseDay(code)
			if err != nil {
				return nil, fmt.Errorf("schedule row %d: %w", i, err)
			}
			out = append(out, weekgrid.Meeting{
				Day:         d,
				Location:    Location(e),
				Start:       models.Value(e.StartTime),
				End:         models.Value(e.EndTime),
				SectionCode: models.Value(e.SectionCode),
			})
		}
	}
	return out, nil
}

// Exams lists the exam sittings: the examSchedule rows followed by any
// courseSchedule rows flagged as exams.
func Exams(o *models.Outline) []models.ScheduleEntry {
	if o == nil {
		return nil
	}
	out := append([]models.ScheduleEntry(nil), o.ExamSchedule...)
	for _, e := range o.CourseSchedule {
		if e.IsExam {
			out = append(out, e)
		}
	}
	return out
}

// Location is the building code and room number, e.g. "AQ3150".
func Location(e models.ScheduleEntry) string {
	return strings.TrimSpace(models.Value(e.BuildingCode)) + strings.TrimSpace(models.Value(e.RoomNumber))
}

// Campus is the campus of the first schedule row, "N/A" when unknown.
func Campus(o *models.Outline) string {
	if o == nil || len(o.CourseSchedule) == 0 {
		return "N/A"
	}
	return models.OrNA(o.CourseSchedule[0].Campus)
}

// Grid builds the week grid for an outline. A nil grid with a nil error means
// the outline has no weekly meetings.
func Grid(o *models.Outline, policy weekgrid.DuplicatePolicy) (*weekgrid.Grid, error) {
	meetings, err := Meetings(o)
	if err != nil {
		return nil, err
	}
	return weekgrid.Build(meetings, policy)
}
