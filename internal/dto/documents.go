package dto

import "github.com/ramonankersmit/vlier-planner-sub001/internal/models"

// CommitDocumentRequest registers a parsed study guide.
type CommitDocumentRequest struct {
	GuideID    string `json:"guide_id" validate:"required"`
	Vak        string `json:"vak"`
	BeginWeek  int    `json:"begin_week" validate:"required,min=1,max=53"`
	EindWeek   int    `json:"eind_week" validate:"required,min=1,max=53"`
	Schooljaar string `json:"schooljaar" validate:"required,schooljaar"`
	Bestand    string `json:"bestand" validate:"required"`
}

// ReplaceRowsRequest overwrites a document's parsed rows wholesale.
type ReplaceRowsRequest struct {
	Rows []models.RawRow `json:"rows"`
}

// SetEnabledRequest toggles a document's participation in the overview.
type SetEnabledRequest struct {
	Enabled bool `json:"enabled"`
}

// ReplaceVacationsRequest overwrites the imported vacation list.
type ReplaceVacationsRequest struct {
	Vacations []VacationPayload `json:"vacations" validate:"dive"`
}

// VacationPayload is one imported vacation period.
type VacationPayload struct {
	Name       string `json:"name" validate:"required"`
	Region     string `json:"region"`
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"required,datetime=2006-01-02"`
	SchoolYear string `json:"school_year"`
	Active     bool   `json:"active"`
}
