// Package planner implements the week-normalization and content-aggregation
// engine: it turns heterogeneous parsed study-guide rows into a canonical
// academic-year week grid with per-subject, per-field aggregated content.
//
// The package is pure: no I/O, no shared state. Callers feed it the current
// documents, rows and vacations and receive a freshly built table.
package planner

import (
	"strconv"
	"strings"
	"time"

	"github.com/ramonankersmit/vlier-planner-sub001/internal/models"
)

// ISOWeeksInYear returns the true number of ISO-8601 weeks in a year,
// 52 or 53 depending on weekday alignment. December 28 is always part of
// the last ISO week of its year.
func ISOWeeksInYear(year int) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

// ParseSchooljaar extracts the starting calendar year from a school-year
// label such as "2025/2026". The second component must be the successor of
// the first.
func ParseSchooljaar(schooljaar string) (int, bool) {
	parts := strings.Split(schooljaar, "/")
	if len(parts) != 2 {
		return 0, false
	}
	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || end != start+1 {
		return 0, false
	}
	return start, true
}

// summerBoundaryWeek splits a school year's week numbers between its two
// calendar years. Dutch school years start after the summer break, so week
// numbers at or above the boundary belong to the first calendar year and
// lower numbers to the second (January onward).
const summerBoundaryWeek = 31

// BuildGrid computes the ordered canonical week grid for a document. The
// grid contains exactly the real ISO weeks of the academic span: a range
// that crosses the year boundary (eindWeek < beginWeek) runs from beginWeek
// up to the true last ISO week of the begin year and continues with week 1
// of the next year. A guide whose beginWeek falls before the summer
// boundary covers the spring half and sits entirely in the school year's
// second calendar year. Malformed metadata yields an empty grid.
func BuildGrid(beginWeek, eindWeek int, schooljaar string) []models.WeekInfo {
	startYear, ok := ParseSchooljaar(schooljaar)
	if !ok {
		return nil
	}
	if beginWeek < 1 || beginWeek > 53 || eindWeek < 1 || eindWeek > 53 {
		return nil
	}

	beginYear := startYear
	if beginWeek < summerBoundaryWeek {
		beginYear = startYear + 1
	}

	lastWeek := ISOWeeksInYear(beginYear)
	if beginWeek > lastWeek {
		return nil
	}

	var grid []models.WeekInfo
	appendWeek := func(year, nr int) {
		grid = append(grid, models.WeekInfo{
			ID:      models.WeekID{ISOYear: year, Nr: nr},
			ISOYear: year,
			Nr:      nr,
		})
	}

	if eindWeek >= beginWeek {
		end := eindWeek
		if end > lastWeek {
			end = lastWeek
		}
		for nr := beginWeek; nr <= end; nr++ {
			appendWeek(beginYear, nr)
		}
		return grid
	}

	for nr := beginWeek; nr <= lastWeek; nr++ {
		appendWeek(beginYear, nr)
	}
	nextLast := ISOWeeksInYear(beginYear + 1)
	end := eindWeek
	if end > nextLast {
		end = nextLast
	}
	for nr := 1; nr <= end; nr++ {
		appendWeek(beginYear+1, nr)
	}
	return grid
}

// gridIndex maps week identifiers to their position in the grid for O(1)
// membership checks and following-week lookups.
type gridIndex struct {
	weeks     []models.WeekInfo
	positions map[models.WeekID]int
	byNr      map[int]models.WeekID
}

func indexGrid(grid []models.WeekInfo) gridIndex {
	idx := gridIndex{
		weeks:     grid,
		positions: make(map[models.WeekID]int, len(grid)),
		byNr:      make(map[int]models.WeekID, len(grid)),
	}
	for i, w := range grid {
		idx.positions[w.ID] = i
		if _, exists := idx.byNr[w.Nr]; !exists {
			idx.byNr[w.Nr] = w.ID
		}
	}
	return idx
}

// lookupNr finds the grid entry carrying a bare week number. Week numbers
// are unique on a grid: a year-crossing span never repeats a number.
func (g gridIndex) lookupNr(nr int) (models.WeekID, bool) {
	id, ok := g.byNr[nr]
	return id, ok
}

func (g gridIndex) contains(id models.WeekID) bool {
	_, ok := g.positions[id]
	return ok
}

// following returns the first grid entry strictly after the given week in
// (isoYear, nr) order, whether or not the week itself is on the grid.
func (g gridIndex) following(id models.WeekID) (models.WeekID, bool) {
	for _, w := range g.weeks {
		if id.Before(w.ID) {
			return w.ID, true
		}
	}
	return models.WeekID{}, false
}
