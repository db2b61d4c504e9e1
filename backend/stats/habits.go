package stats

import (
	"time"

	"khelkhatm/backend/models"
)

type HabitLevel string

const (
	HabitNone    HabitLevel = "none"
	HabitPartial HabitLevel = "partial"
	HabitFull    HabitLevel = "full"
)

type HabitDay struct {
	Date     string     `json:"date"`
	Weekday  string     `json:"weekday"`
	Exercise bool       `json:"exercise"`
	Coding   bool       `json:"coding"`
	Level    HabitLevel `json:"level"`
	IsToday  bool       `json:"isToday"`
}

const habitWindow = 7

// HabitWeek returns the last seven days, oldest first, with the habit flags
// of any log recorded on that date.
func HabitWeek(logs []models.DailyLog, now time.Time) []HabitDay {
	byDay := make(map[string]models.DailyLog, len(logs))
	for _, l := range logs {
		byDay[l.DayKey()] = l
	}

	today := startOfDay(now)
	week := make([]HabitDay, 0, habitWindow)
	for i := habitWindow - 1; i >= 0; i-- {
		day := addDays(today, -i)
		key := DayKey(day)
		l := byDay[key]

		level := HabitNone
		switch {
		case l.Exercise && l.Coding:
			level = HabitFull
		case l.Exercise || l.Coding:
			level = HabitPartial
		}

		week = append(week, HabitDay{
			Date:     key,
			Weekday:  day.Weekday().String()[:1],
			Exercise: l.Exercise,
			Coding:   l.Coding,
			Level:    level,
			IsToday:  i == 0,
		})
	}
	return week
}
