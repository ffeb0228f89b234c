package planner

import (
	"sort"

	"github.com/ramonankersmit/vlier-planner-sub001/internal/models"
)

// Input carries everything the pipeline consumes: the committed documents,
// their parsed rows keyed by file id, and the imported vacations.
type Input struct {
	Docs      []models.DocRecord
	Rows      map[string][]models.RawRow
	Vacations []models.SchoolVacation
}

// Result is the fully built week table.
type Result struct {
	Weeks         []models.WeekInfo
	ByWeek        map[models.WeekID]map[string]*models.SubjectWeekData
	VacationWeeks map[models.WeekID][]string
}

// Aggregate rebuilds the complete per-subject week table from the current
// inputs. The function is pure and deterministic: the same inputs always
// produce the same table, so re-ingesting identical rows changes nothing.
//
// Disabled documents contribute neither grid weeks nor content. Documents
// with malformed metadata yield an empty grid and are skipped.
func Aggregate(in Input) Result {
	result := Result{
		ByWeek: make(map[models.WeekID]map[string]*models.SubjectWeekData),
	}

	grids := make(map[string][]models.WeekInfo, len(in.Docs))
	union := make(map[models.WeekID]models.WeekInfo)
	for _, doc := range in.Docs {
		if !doc.Enabled {
			continue
		}
		grid := BuildGrid(doc.BeginWeek, doc.EindWeek, doc.Schooljaar)
		if len(grid) == 0 {
			continue
		}
		grids[doc.FileID] = grid
		for _, week := range grid {
			union[week.ID] = week
		}
	}

	result.Weeks = make([]models.WeekInfo, 0, len(union))
	for _, week := range union {
		result.Weeks = append(result.Weeks, week)
	}
	sort.Slice(result.Weeks, func(i, j int) bool {
		return result.Weeks[i].ID.Before(result.Weeks[j].ID)
	})

	result.VacationWeeks = vacationOverlay(result.Weeks, in.Vacations)

	for _, doc := range in.Docs {
		grid, ok := grids[doc.FileID]
		if !ok {
			continue
		}
		idx := indexGrid(grid)
		rows := in.Rows[doc.FileID]
		docSignal := HasStructuredSignal(rows)

		for _, row := range rows {
			resolved, ok := ResolveRow(row, doc, idx)
			if !ok {
				continue
			}
			contrib := classifyRow(resolved.Row, doc, docSignal)
			spans := spanEntries(resolved.Weeks)

			for i, weekID := range resolved.Weeks {
				data := result.ensure(weekID, doc.Vak)
				if i == 0 {
					data.Lesstof = append(data.Lesstof, contrib.Lesstof...)
					data.Huiswerk = append(data.Huiswerk, contrib.Huiswerk...)
					data.Deadlines = append(data.Deadlines, contrib.Deadlines...)
					data.Opmerkingen = append(data.Opmerkingen, contrib.Opmerkingen...)
					data.HuiswerkItems = append(data.HuiswerkItems, contrib.HuiswerkItems...)
				} else {
					// Continuation weeks inherit the anchor's topic and
					// homework unmodified; a multi-week assignment stays
					// visible wherever it is active.
					data.Lesstof = append(data.Lesstof, contrib.Lesstof...)
					data.Huiswerk = append(data.Huiswerk, contrib.Huiswerk...)
					data.HuiswerkItems = append(data.HuiswerkItems, contrib.HuiswerkItems...)
				}
				if contrib.Annotation != "" && !contains(data.Opmerkingen, contrib.Annotation) {
					data.Opmerkingen = append(data.Opmerkingen, contrib.Annotation)
				}
				if spans != nil {
					data.MultiWeekSpans = append(data.MultiWeekSpans, spans[i])
				}
			}
		}
	}

	result.applyVacationOverlay()
	return result
}

func (r *Result) ensure(weekID models.WeekID, vak string) *models.SubjectWeekData {
	subjects, ok := r.ByWeek[weekID]
	if !ok {
		subjects = make(map[string]*models.SubjectWeekData)
		r.ByWeek[weekID] = subjects
	}
	data, ok := subjects[vak]
	if !ok {
		data = &models.SubjectWeekData{}
		subjects[vak] = data
	}
	return data
}

// applyVacationOverlay annotates every populated subject/week entry whose
// week intersects an active vacation.
func (r *Result) applyVacationOverlay() {
	for _, week := range r.Weeks {
		names := r.VacationWeeks[week.ID]
		if len(names) == 0 {
			continue
		}
		for _, data := range r.ByWeek[week.ID] {
			for _, name := range names {
				if !contains(data.Opmerkingen, name) {
					data.Opmerkingen = append(data.Opmerkingen, name)
				}
			}
		}
	}
}
