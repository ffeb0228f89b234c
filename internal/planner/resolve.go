package planner

import (
	"time"

	"github.com/ramonankersmit/vlier-planner-sub001/internal/models"
)

const dateLayout = "2006-01-02"

// ResolvedRow couples a raw row with the canonical weeks it belongs to.
// Weeks is ordered, the first entry is the anchor. Datum/DatumEind carry
// the corrected dates when the row's own dates disagreed with the
// resolved week.
type ResolvedRow struct {
	Row   models.RawRow
	Weeks []models.WeekID
}

// ResolveRow maps a raw row onto the document's week grid. Explicit week
// lists take precedence over span bounds, which take precedence over the
// single week field. Week numbers that name a calendar-impossible week are
// aliased onto the next real grid week, unless the row's date pins it to an
// existing one. Rows without any usable week information resolve to nothing
// and are dropped from week-indexed aggregation.
func ResolveRow(row models.RawRow, doc models.DocRecord, idx gridIndex) (ResolvedRow, bool) {
	startYear, ok := ParseSchooljaar(doc.Schooljaar)
	if !ok || len(idx.weeks) == 0 {
		return ResolvedRow{}, false
	}

	numbers := weekNumbers(row)

	var resolved []models.WeekID
	seen := make(map[models.WeekID]struct{})
	add := func(id models.WeekID) {
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		resolved = append(resolved, id)
	}

	dateWeek, hasDate := isoWeekOf(row.Datum)

	for _, nr := range numbers {
		if id, ok := idx.lookupNr(nr); ok {
			add(id)
			continue
		}
		id := models.WeekID{ISOYear: yearForWeek(nr, doc, startYear), Nr: nr}
		// Calendar aliasing: the numeric mapping names a week that does
		// not exist on the grid. A date on the row wins over the naive
		// number; otherwise fall forward to the next real grid week.
		if hasDate && idx.contains(dateWeek) {
			add(dateWeek)
			continue
		}
		if next, ok := idx.following(id); ok {
			add(next)
		}
	}

	if len(resolved) == 0 && hasDate && idx.contains(dateWeek) {
		add(dateWeek)
	}

	if len(resolved) == 0 {
		return ResolvedRow{}, false
	}

	out := ResolvedRow{Row: row, Weeks: resolved}
	correctDates(&out)
	return out, true
}

// weekNumbers extracts the declared week numbers in precedence order:
// explicit list, then span bounds, then the single week field.
func weekNumbers(row models.RawRow) []int {
	if len(row.Weeks) > 0 {
		return row.Weeks
	}
	if row.WeekSpanStart != nil && row.WeekSpanEnd != nil {
		start, end := *row.WeekSpanStart, *row.WeekSpanEnd
		if end < start {
			return []int{start}
		}
		nums := make([]int, 0, end-start+1)
		for nr := start; nr <= end; nr++ {
			nums = append(nums, nr)
		}
		return nums
	}
	if row.WeekSpanStart != nil {
		return []int{*row.WeekSpanStart}
	}
	if row.Week != nil {
		return []int{*row.Week}
	}
	return nil
}

// yearForWeek anchors a bare week number to an ISO year using the
// document's school-year span. Numbers at or above a high beginWeek belong
// to the first calendar year; numbers below it, after a year wrap, to the
// second. Guides starting after the summer boundary sit in the second
// calendar year entirely.
func yearForWeek(nr int, doc models.DocRecord, startYear int) int {
	if doc.BeginWeek < summerBoundaryWeek {
		return startYear + 1
	}
	if doc.EindWeek < doc.BeginWeek && nr < doc.BeginWeek {
		return startYear + 1
	}
	return startYear
}

// correctDates rewrites the row's datum when it contradicts the resolved
// anchor week: the date snaps to the Monday of the anchor week and
// datum_eind shifts by the same delta so a date range keeps its length.
func correctDates(r *ResolvedRow) {
	if r.Row.Datum == "" {
		return
	}
	datum, err := time.Parse(dateLayout, r.Row.Datum)
	if err != nil {
		return
	}
	anchor := r.Weeks[0]
	y, w := datum.ISOWeek()
	if y == anchor.ISOYear && w == anchor.Nr {
		return
	}
	corrected := isoWeekStart(anchor.ISOYear, anchor.Nr)
	delta := corrected.Sub(datum)
	r.Row.Datum = corrected.Format(dateLayout)
	if r.Row.DatumEind != "" {
		if eind, err := time.Parse(dateLayout, r.Row.DatumEind); err == nil {
			r.Row.DatumEind = eind.Add(delta).Format(dateLayout)
		}
	}
}

// isoWeekStart returns the Monday of the given ISO week.
func isoWeekStart(year, week int) time.Time {
	// January 4 is always part of ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := jan4.AddDate(0, 0, 1-weekday)
	return monday.AddDate(0, 0, (week-1)*7)
}

func isoWeekOf(date string) (models.WeekID, bool) {
	if date == "" {
		return models.WeekID{}, false
	}
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return models.WeekID{}, false
	}
	y, w := t.ISOWeek()
	return models.WeekID{ISOYear: y, Nr: w}, true
}
