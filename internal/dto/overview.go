package dto

import "github.com/ramonankersmit/vlier-planner-sub001/internal/models"

// OverviewRequest narrows the week overview.
type OverviewRequest struct {
	Schooljaar string `json:"schooljaar" form:"schooljaar"`
	Vak        string `json:"vak" form:"vak"`
}

// OverviewWeek is one row of the week-by-week overview: the canonical week
// plus every subject's aggregated content for it.
type OverviewWeek struct {
	Week      models.WeekInfo                   `json:"week"`
	Vacations []string                          `json:"vacations,omitempty"`
	Subjects  map[string]models.SubjectWeekData `json:"subjects"`
}

// OverviewResponse is the aggregated table served to the UI.
type OverviewResponse struct {
	Weeks    []OverviewWeek `json:"weeks"`
	Subjects []string       `json:"subjects"`
}
