package planner

import (
	"strings"

	"github.com/ramonankersmit/vlier-planner-sub001/internal/models"
)

// HasStructuredSignal reports whether any row in the document carries a
// structured field. The flag is computed once per document (first pass)
// and drives the classification of every row (second pass).
func HasStructuredSignal(rows []models.RawRow) bool {
	for _, row := range rows {
		if row.HasStructuredFields() {
			return true
		}
	}
	return false
}

// rowContribution is the classifier's output for one row: the text each
// display column receives. Annotation is a vacation/general-period label
// that lands in opmerkingen of every resolved week, not just the anchor.
type rowContribution struct {
	Lesstof       []string
	Huiswerk      []string
	Deadlines     []string
	Opmerkingen   []string
	HuiswerkItems []string
	Annotation    string
}

// classifyRow decides which columns a row's text populates.
//
// A row is handled with column fidelity when it carries structured fields
// itself, when the document as a whole shows a structured signal, or when a
// DOCX-sourced row has a real topic (DOCX tables keep their columns apart,
// so a topic there is never a free-text note). Otherwise the row is a
// general note and its single text mirrors into all four columns.
//
// A week label that names a vacation or another general period is merged
// into opmerkingen on top of either branch; it annotates, it never replaces
// structured content.
func classifyRow(row models.RawRow, doc models.DocRecord, docSignal bool) rowContribution {
	var out rowContribution

	structured := row.HasStructuredFields() || docSignal || (doc.IsDocx() && row.Onderwerp != "")

	if structured {
		if row.Onderwerp != "" {
			out.Lesstof = append(out.Lesstof, row.Onderwerp)
		}
		if row.Huiswerk != "" {
			out.Huiswerk = append(out.Huiswerk, row.Huiswerk)
			out.HuiswerkItems = append(out.HuiswerkItems, SplitHuiswerk(row.Huiswerk)...)
		}
		if row.Toets != nil {
			out.Deadlines = append(out.Deadlines, renderToets(row.Toets))
		}
		if row.Opdracht != "" {
			entry := "Opdracht: " + row.Opdracht
			if row.Inleverdatum != "" {
				entry += " (inleveren " + row.Inleverdatum + ")"
			}
			out.Deadlines = append(out.Deadlines, entry)
		} else if row.Inleverdatum != "" {
			out.Deadlines = append(out.Deadlines, "Inleveren "+row.Inleverdatum)
		}
		if row.Notities != "" {
			out.Opmerkingen = append(out.Opmerkingen, row.Notities)
		}
	} else {
		text := row.Onderwerp
		if text == "" {
			text = row.WeekLabel
		}
		if text != "" {
			out.Lesstof = append(out.Lesstof, text)
			out.Huiswerk = append(out.Huiswerk, text)
			out.Deadlines = append(out.Deadlines, text)
			out.Opmerkingen = append(out.Opmerkingen, text)
		}
	}

	if label := row.WeekLabel; label != "" && !isWeekReference(label) {
		out.Annotation = label
	}

	return out
}

// SplitHuiswerk breaks homework text on soft-return separators into an
// ordered list of discrete tasks. Text without separators yields a single
// element equal to the full string.
func SplitHuiswerk(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\v' || r == '\r'
	})
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 && strings.TrimSpace(text) != "" {
		items = append(items, strings.TrimSpace(text))
	}
	return items
}

// renderToets turns an assessment into its deadline label.
func renderToets(t *models.ToetsInfo) string {
	label := t.Type
	if label == "" {
		label = "Toets"
	}
	var details []string
	if t.Weging != "" {
		details = append(details, "weging "+t.Weging)
	}
	if t.Herkansing {
		details = append(details, "herkansing mogelijk")
	}
	if len(details) > 0 {
		label += " (" + strings.Join(details, ", ") + ")"
	}
	return label
}

// isWeekReference reports whether a label is merely a week designation
// ("week 46", "wk 3-5") rather than a vacation or general-period note.
func isWeekReference(label string) bool {
	s := strings.ToLower(strings.TrimSpace(label))
	s = strings.TrimPrefix(s, "week")
	s = strings.TrimPrefix(s, "wk")
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '-' && r != '/' && r != ' ' && r != ',' {
			return false
		}
	}
	return true
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
