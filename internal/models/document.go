package models

import (
	"strings"
	"time"
)

// DocRecord describes one committed study-guide document. Records are
// replaced wholesale on re-ingestion, never patched in place.
type DocRecord struct {
	FileID     string    `db:"file_id" json:"file_id"`
	GuideID    string    `db:"guide_id" json:"guide_id"`
	Vak        string    `db:"vak" json:"vak"`
	BeginWeek  int       `db:"begin_week" json:"begin_week"`
	EindWeek   int       `db:"eind_week" json:"eind_week"`
	Schooljaar string    `db:"schooljaar" json:"schooljaar"`
	Bestand    string    `db:"bestand" json:"bestand"`
	Enabled    bool      `db:"enabled" json:"enabled"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// IsDocx reports whether the record originates from a DOCX upload. The
// extension of the uploaded file decides how faithful the parsed columns
// are, which in turn drives the mirroring policy.
func (d DocRecord) IsDocx() bool {
	return strings.EqualFold(filepathExt(d.Bestand), ".docx")
}

// IsPDF reports whether the record originates from a PDF upload.
func (d DocRecord) IsPDF() bool {
	return strings.EqualFold(filepathExt(d.Bestand), ".pdf")
}

func filepathExt(name string) string {
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		return name[idx:]
	}
	return ""
}

// DocFilter narrows down document listings.
type DocFilter struct {
	Schooljaar  string
	Vak         string
	EnabledOnly bool
}
