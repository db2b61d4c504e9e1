package stats

import "time"

type Projection struct {
	Date       string `json:"date"`
	DaysNeeded int    `json:"daysNeeded"`
	Remaining  int    `json:"remaining"`
}

// ProjectCompletion estimates when the remaining questions are finished at
// target questions per day. It returns nil when nothing remains or target is
// not positive.
func ProjectCompletion(total, done, revisit, target int, now time.Time) *Projection {
	remaining := total - (done + revisit)
	if remaining <= 0 || target <= 0 {
		return nil
	}

	daysNeeded := (remaining + target - 1) / target
	return &Projection{
		Date:       DayKey(addDays(now, daysNeeded)),
		DaysNeeded: daysNeeded,
		Remaining:  remaining,
	}
}
