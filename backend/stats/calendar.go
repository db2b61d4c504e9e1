package stats

import (
	"time"

	"khelkhatm/backend/models"
)

// Cell is one real day of the calendar grid.
type Cell struct {
	Date    string `json:"date"`
	Day     int    `json:"day"`
	Count   int    `json:"count"`
	Level   int    `json:"level"`
	IsToday bool   `json:"isToday"`
}

// Calendar is a Monday-first month grid. Cells starts with nil padding
// entries so that day 1 sits under its weekday column.
type Calendar struct {
	Year           int     `json:"year"`
	Month          int     `json:"month"`
	MonthName      string  `json:"monthName"`
	MonthTotal     int     `json:"monthTotal"`
	IsCurrentMonth bool    `json:"isCurrentMonth"`
	Cells          []*Cell `json:"cells"`
}

// Level buckets a per-day count into the 0-3 shading scale.
func Level(count int) int {
	switch {
	case count <= 0:
		return 0
	case count == 1:
		return 1
	case count <= 3:
		return 2
	default:
		return 3
	}
}

// BuildCalendar lays out the month monthOffset months away from now's month.
func BuildCalendar(questions []models.Question, monthOffset int, now time.Time) Calendar {
	loc := now.Location()
	first := time.Date(now.Year(), now.Month()+time.Month(monthOffset), 1, 0, 0, 0, 0, loc)
	year, month := first.Year(), first.Month()

	solved := solvedDays(questions)

	total := 0
	for _, q := range questions {
		at, ok := solvedAt(q)
		if !ok {
			continue
		}
		if at.Month() == month && at.Year() == year {
			total++
		}
	}

	padding := mondayIndex(first.Weekday())
	days := daysIn(year, month, loc)
	today := DayKey(now)
	isCurrent := monthOffset == 0

	cells := make([]*Cell, 0, padding+days)
	for i := 0; i < padding; i++ {
		cells = append(cells, nil)
	}
	for d := 1; d <= days; d++ {
		key := DayKey(time.Date(year, month, d, 0, 0, 0, 0, loc))
		count := solved[key]
		cells = append(cells, &Cell{
			Date:    key,
			Day:     d,
			Count:   count,
			Level:   Level(count),
			IsToday: isCurrent && key == today,
		})
	}

	return Calendar{
		Year:           year,
		Month:          int(month),
		MonthName:      first.Format("January 2006"),
		MonthTotal:     total,
		IsCurrentMonth: isCurrent,
		Cells:          cells,
	}
}

