package activity

import "fmt"

// Live is the current coding-session snapshot reported by the tracking backend.
type Live struct {
	TotalActiveSeconds int64  `json:"total_active_seconds"`
	IsActiveNow        bool   `json:"is_active_now"`
	DailyActiveSeconds int64  `json:"daily_active_seconds"`
	LastUpdated        string `json:"last_updated,omitempty"`
}

type Session struct {
	DurationSeconds int64  `json:"duration_seconds"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
}

type Stats struct {
	TotalDaysActive          int64    `json:"total_days_active"`
	AverageDailySeconds      float64  `json:"average_daily_seconds"`
	LongestSession           *Session `json:"longest_session"`
	CurrentStreak            int      `json:"current_streak"`
	TotalSecondsAllTime      int64    `json:"total_seconds_all_time"`
	Last7DaysTotalSeconds    int64    `json:"last_7_days_total_seconds"`
	CurrentMonthTotalSeconds int64    `json:"current_month_total_seconds"`
}

type DailyHistory struct {
	Date         string `json:"date"`
	TotalSeconds int64  `json:"total_seconds"`
	SessionCount int    `json:"session_count"`
}

type History struct {
	Data []DailyHistory `json:"data"`
}

// Error is returned when the backend answers with a non-2xx status. It is
// never confused with an empty successful response.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// FormatDuration renders seconds as "1h 2m", "3m 4s" or "5s".
func FormatDuration(totalSeconds int64) string {
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
