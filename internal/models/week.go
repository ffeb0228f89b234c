package models

import "fmt"

// WeekID identifies a real ISO calendar week. Two WeekIDs denote the same
// week exactly when both components match.
type WeekID struct {
	ISOYear int `json:"iso_year"`
	Nr      int `json:"nr"`
}

// String renders the common ISO week notation, e.g. "2025-W46".
func (w WeekID) String() string {
	return fmt.Sprintf("%d-W%02d", w.ISOYear, w.Nr)
}

// Before orders week identifiers by (isoYear, nr).
func (w WeekID) Before(other WeekID) bool {
	if w.ISOYear != other.ISOYear {
		return w.ISOYear < other.ISOYear
	}
	return w.Nr < other.Nr
}

// WeekInfo is one entry of the canonical week grid.
type WeekInfo struct {
	ID      WeekID `json:"id"`
	ISOYear int    `json:"iso_year"`
	Nr      int    `json:"nr"`
}

// SpanRole marks the position of a week inside a multi-week declaration.
type SpanRole string

const (
	SpanRoleStart    SpanRole = "start"
	SpanRoleContinue SpanRole = "continue"
)

// MultiWeekSpan records that a row's content stretches across several weeks.
// A start entry points forward to the last covered week, continue entries
// point back to the anchor week.
type MultiWeekSpan struct {
	Role     SpanRole `json:"role"`
	FromWeek int      `json:"from_week,omitempty"`
	ToWeek   int      `json:"to_week,omitempty"`
}

// SubjectWeekData aggregates everything a subject displays for one week.
// The four column fields collect contributions in row order.
type SubjectWeekData struct {
	Lesstof        []string        `json:"lesstof"`
	Huiswerk       []string        `json:"huiswerk"`
	Deadlines      []string        `json:"deadlines"`
	Opmerkingen    []string        `json:"opmerkingen"`
	HuiswerkItems  []string        `json:"huiswerk_items"`
	MultiWeekSpans []MultiWeekSpan `json:"multi_week_spans,omitempty"`
}
