package stats

import (
	"time"

	"khelkhatm/backend/models"
)

// Streak counts consecutive days ending today with at least one DONE or
// REVISIT completion. A day without activity today yields 0 even if
// yesterday had some.
func Streak(questions []models.Question, now time.Time) int {
	solved := solvedDays(questions)
	if len(solved) == 0 {
		return 0
	}

	streak := 0
	for day := startOfDay(now); solved[DayKey(day)] > 0; day = addDays(day, -1) {
		streak++
	}
	return streak
}
