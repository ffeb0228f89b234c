package planner

import (
	"github.com/ramonankersmit/vlier-planner-sub001/internal/models"
)

// vacationOverlay maps grid weeks to the names of active vacations whose
// period intersects them. Vacation data only annotates weeks; it never
// adds or removes grid entries.
func vacationOverlay(grid []models.WeekInfo, vacations []models.SchoolVacation) map[models.WeekID][]string {
	overlay := make(map[models.WeekID][]string)
	for _, vac := range vacations {
		if !vac.Active || vac.EndDate.Before(vac.StartDate) {
			continue
		}
		for _, week := range grid {
			weekStart := isoWeekStart(week.ISOYear, week.Nr)
			weekEnd := weekStart.AddDate(0, 0, 6)
			if vac.StartDate.After(weekEnd) || vac.EndDate.Before(weekStart) {
				continue
			}
			if !contains(overlay[week.ID], vac.Name) {
				overlay[week.ID] = append(overlay[week.ID], vac.Name)
			}
		}
	}
	return overlay
}
