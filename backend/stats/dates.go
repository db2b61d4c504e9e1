package stats

import (
	"time"

	"khelkhatm/backend/models"
)

const dayLayout = "2006-01-02"

// DayKey formats t as YYYY-MM-DD in t's own location.
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}

// startOfDay keeps the wall-clock date of t and drops the time of day.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// addDays moves by calendar days rather than by 24h so DST shifts never
// skip or repeat a date.
func addDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// mondayIndex maps Monday..Sunday to 0..6.
func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// solvedAt returns the completion time of a question that counts toward the
// statistics. Questions that are not DONE/REVISIT, or have no usable
// completion time, report false.
func solvedAt(q models.Question) (time.Time, bool) {
	if !q.Status.Solved() || q.CompletedAt == nil || q.CompletedAt.IsZero() {
		return time.Time{}, false
	}
	return *q.CompletedAt, true
}

// solvedDays counts qualifying completions per calendar day.
func solvedDays(questions []models.Question) map[string]int {
	days := make(map[string]int)
	for _, q := range questions {
		at, ok := solvedAt(q)
		if !ok {
			continue
		}
		days[DayKey(at)]++
	}
	return days
}
