package models

import "strings"

// Option is one entry of a catalog listing level (year, term, department...).
type Option struct {
	Text  string `json:"text" bson:"text"`
	Value string `json:"value" bson:"value"`
}

// Outline is one course offering as served by the outlines API.
// Pointer fields are nil when the API leaves them out.
type Outline struct {
	Info           *Info           `json:"info,omitempty"`
	Instructor     []Instructor    `json:"instructor,omitempty"`
	CourseSchedule []ScheduleEntry `json:"courseSchedule,omitempty"`
	ExamSchedule   []ScheduleEntry `json:"examSchedule,omitempty"`
}

type Info struct {
	Name           *string `json:"name,omitempty"`
	Units          *string `json:"units,omitempty"`
	Title          *string `json:"title,omitempty"`
	Description    *string `json:"description,omitempty"`
	Term           *string `json:"term,omitempty"`
	Designation    *string `json:"designation,omitempty"`
	DeliveryMethod *string `json:"deliveryMethod,omitempty"`
	Prerequisites  *string `json:"prerequisites,omitempty"`
	OutlinePath    *string `json:"outlinePath,omitempty"`
	Section        *string `json:"section,omitempty"`
	Dept           *string `json:"dept,omitempty"`
	Number         *string `json:"number,omitempty"`
}

type Instructor struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Office   *string `json:"office,omitempty"`
	RoleCode *string `json:"roleCode,omitempty"`
}

// ScheduleEntry is a courseSchedule row. Days holds codes like "Mo, We".
type ScheduleEntry struct {
	Days         *string `json:"days,omitempty"`
	StartTime    *string `json:"startTime,omitempty"`
	EndTime      *string `json:"endTime,omitempty"`
	StartDate    *string `json:"startDate,omitempty"`
	EndDate      *string `json:"endDate,omitempty"`
	Campus       *string `json:"campus,omitempty"`
	BuildingCode *string `json:"buildingCode,omitempty"`
	RoomNumber   *string `json:"roomNumber,omitempty"`
	SectionCode  *string `json:"sectionCode,omitempty"`
	IsExam       bool    `json:"isExam,omitempty"`
}

// Get reports a field's value and whether the API sent it at all.
func Get(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	return *p, true
}

// OrNA returns the trimmed value, or "N/A" when it is missing or blank.
func OrNA(p *string) string {
	if v, ok := Get(p); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return "N/A"
}

// Value returns the field or "" when absent.
func Value(p *string) string {
	v, _ := Get(p)
	return v
}

// Ptr is a helper for building outlines in code.
func Ptr(s string) *string {
	return &s
}
