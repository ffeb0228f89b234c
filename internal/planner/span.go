package planner

import "github.com/ramonankersmit/vlier-planner-sub001/internal/models"

// spanEntries derives the span relation for a row resolved to multiple
// weeks: the anchor week gets a start entry pointing at the last covered
// week, every later week gets a continue entry pointing back at the anchor.
// Single-week rows yield no entries.
func spanEntries(weeks []models.WeekID) []models.MultiWeekSpan {
	if len(weeks) < 2 {
		return nil
	}
	entries := make([]models.MultiWeekSpan, len(weeks))
	entries[0] = models.MultiWeekSpan{Role: models.SpanRoleStart, ToWeek: weeks[len(weeks)-1].Nr}
	for i := 1; i < len(weeks); i++ {
		entries[i] = models.MultiWeekSpan{Role: models.SpanRoleContinue, FromWeek: weeks[0].Nr}
	}
	return entries
}
