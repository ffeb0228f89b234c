package models

// ToetsInfo describes an assessment attached to a row. Its presence is a
// structured signal regardless of the field values.
type ToetsInfo struct {
	Type       string `json:"type,omitempty"`
	Weging     string `json:"weging,omitempty"`
	Herkansing bool   `json:"herkansing,omitempty"`
}

// RawRow is one loosely-typed record produced by the parse backend. Every
// field is optional; a row carries no inherent week identity and has to be
// resolved against the document's grid before aggregation.
//
// Dates are ISO "YYYY-MM-DD" strings as delivered by the parser.
type RawRow struct {
	Week          *int       `json:"week,omitempty"`
	Weeks         []int      `json:"weeks,omitempty"`
	WeekSpanStart *int       `json:"week_span_start,omitempty"`
	WeekSpanEnd   *int       `json:"week_span_end,omitempty"`
	WeekLabel     string     `json:"week_label,omitempty"`
	Datum         string     `json:"datum,omitempty"`
	DatumEind     string     `json:"datum_eind,omitempty"`
	Onderwerp     string     `json:"onderwerp,omitempty"`
	Huiswerk      string     `json:"huiswerk,omitempty"`
	Opdracht      string     `json:"opdracht,omitempty"`
	Inleverdatum  string     `json:"inleverdatum,omitempty"`
	Toets         *ToetsInfo `json:"toets,omitempty"`
	Notities      string     `json:"notities,omitempty"`
	SourceRowID   string     `json:"source_row_id,omitempty"`
}

// HasStructuredFields reports whether the row itself carries a structured
// signal: homework, an assessment, an assignment, or remarks.
func (r RawRow) HasStructuredFields() bool {
	return r.Huiswerk != "" || r.Toets != nil || r.Opdracht != "" || r.Notities != ""
}
