package stats

import (
	"time"

	"khelkhatm/backend/models"
)

func at(layout string) *time.Time {
	t, err := time.Parse(time.RFC3339, layout)
	if err != nil {
		panic(err)
	}
	return &t
}

func solved(status models.Status, completed string) models.Question {
	return models.Question{Title: "q", Status: status, CompletedAt: at(completed)}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}
