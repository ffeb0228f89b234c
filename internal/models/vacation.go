package models

import "time"

// SchoolVacation is an externally imported vacation period. The planner
// consumes these read-only: vacations annotate weeks, they never decide
// which weeks exist.
type SchoolVacation struct {
	ID         string    `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Region     string    `db:"region" json:"region"`
	StartDate  time.Time `db:"start_date" json:"start_date"`
	EndDate    time.Time `db:"end_date" json:"end_date"`
	SchoolYear string    `db:"school_year" json:"school_year"`
	Active     bool      `db:"active" json:"active"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
