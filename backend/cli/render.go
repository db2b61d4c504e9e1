package cli

import (
	"fmt"
	"io"
	"strings"

	"khelkhatm/backend/activity"
	"khelkhatm/backend/dashboard"
	"khelkhatm/backend/stats"

	"github.com/fatih/color"
)

// levelGlyphs marks calendar shading so it survives --no-color.
const levelGlyphs = " .:#"

var (
	bold        = color.New(color.Bold)
	faint       = color.New(color.Faint)
	underline   = color.New(color.Underline)
	levelColors = []*color.Color{
		color.New(color.Faint),
		color.New(color.FgGreen),
		color.New(color.FgHiGreen),
		color.New(color.FgHiGreen, color.Bold),
	}
	habitGlyphs = map[stats.HabitLevel]string{
		stats.HabitNone:    ".",
		stats.HabitPartial: "+",
		stats.HabitFull:    "#",
	}
)

func renderCalendar(w io.Writer, cal stats.Calendar) {
	fmt.Fprintln(w, bold.Sprint(cal.MonthName))
	fmt.Fprintln(w, "Mo  Tu  We  Th  Fr  Sa  Su")

	row := make([]string, 0, 7)
	flush := func() {
		if len(row) == 0 {
			return
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(row, " "), " "))
		row = row[:0]
	}

	for _, cell := range cal.Cells {
		if cell == nil {
			row = append(row, "   ")
		} else {
			text := levelColors[cell.Level].Sprintf("%2d%c", cell.Day, levelGlyphs[cell.Level])
			if cell.IsToday {
				text = underline.Sprint(text)
			}
			row = append(row, text)
		}
		if len(row) == 7 {
			flush()
		}
	}
	flush()
}

func renderProgress(w io.Writer, title string, groups []stats.GroupProgress) {
	if len(groups) == 0 {
		return
	}

	width := 0
	for _, g := range groups {
		if len(g.Name) > width {
			width = len(g.Name)
		}
	}

	fmt.Fprintln(w, bold.Sprint(title))
	for _, g := range groups {
		fmt.Fprintf(w, "  %-*s %d/%d\n", width, g.Name, g.Done, g.Total)
	}
}

// RenderStats writes the terminal version of the dashboard.
func RenderStats(w io.Writer, v dashboard.View) {
	renderCalendar(w, v.Calendar)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Solved this month: %d\n", v.Calendar.MonthTotal)
	fmt.Fprintf(w, "Streak: %d days\n", v.Streak)
	if v.Summary != nil {
		fmt.Fprintf(w, "DSA: %d done, %d revisit, %d total\n", v.Summary.DSA.Done, v.Summary.DSA.Revisit, v.Summary.DSA.Total)
		fmt.Fprintf(w, "CS: %d/%d concepts\n", v.Summary.CS.Done, v.Summary.CS.Total)
	}
	if v.Projection != nil {
		fmt.Fprintf(w, "Projected finish: %s (%d days at %d/day)\n", v.Projection.Date, v.Projection.DaysNeeded, v.DailyTarget)
	} else {
		fmt.Fprintln(w, "Projected finish: -")
	}

	habits := make([]string, 0, len(v.HabitWeek))
	for _, d := range v.HabitWeek {
		habits = append(habits, d.Weekday+habitGlyphs[d.Level])
	}
	fmt.Fprintf(w, "Habits: %s\n", strings.Join(habits, " "))

	if v.Activity != nil {
		line := "Coding today: " + activity.FormatDuration(v.Activity.DailyActiveSeconds)
		if v.Activity.IsActiveNow {
			line += " (active now)"
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w)
	renderProgress(w, "Topics", v.TopicProgress)
	renderProgress(w, "Subjects", v.SubjectProgress)
}

// renderLive prints a live snapshot and, when available, the aggregate stats.
func renderLive(w io.Writer, live *activity.Live, s *activity.Stats) {
	active := "no"
	if live.IsActiveNow {
		active = color.GreenString("yes")
	}
	fmt.Fprintf(w, "Active now:    %s\n", active)
	fmt.Fprintf(w, "Today:         %s\n", activity.FormatDuration(live.DailyActiveSeconds))
	fmt.Fprintf(w, "Total:         %s\n", activity.FormatDuration(live.TotalActiveSeconds))
	if live.LastUpdated != "" {
		fmt.Fprintf(w, "Last updated:  %s\n", faint.Sprint(live.LastUpdated))
	}

	if s == nil {
		return
	}
	fmt.Fprintf(w, "Days active:   %d\n", s.TotalDaysActive)
	fmt.Fprintf(w, "Streak:        %d days\n", s.CurrentStreak)
	fmt.Fprintf(w, "Last 7 days:   %s\n", activity.FormatDuration(s.Last7DaysTotalSeconds))
	fmt.Fprintf(w, "This month:    %s\n", activity.FormatDuration(s.CurrentMonthTotalSeconds))
	if s.LongestSession != nil {
		fmt.Fprintf(w, "Longest:       %s on %s\n", activity.FormatDuration(s.LongestSession.DurationSeconds), s.LongestSession.Date)
	}
}
