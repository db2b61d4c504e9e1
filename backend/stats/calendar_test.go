package stats

import (
	"testing"
	"time"

	"khelkhatm/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func realCells(cal Calendar) []*Cell {
	var out []*Cell
	for _, c := range cal.Cells {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

func TestLevel(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 2: 2, 3: 2, 4: 3, 17: 3}
	for count, want := range cases {
		assert.Equal(t, want, Level(count), "count %d", count)
	}
}

func TestBuildCalendarCellCountMatchesMonthLength(t *testing.T) {
	now := day(2024, time.March, 20)
	for offset := -30; offset <= 2; offset++ {
		cal := BuildCalendar(nil, offset, now)
		first := time.Date(cal.Year, time.Month(cal.Month), 1, 0, 0, 0, 0, time.UTC)
		want := first.AddDate(0, 1, -1).Day()

		assert.Len(t, realCells(cal), want, "offset %d", offset)
	}
}

func TestBuildCalendarPadding(t *testing.T) {
	cases := []struct {
		name    string
		now     time.Time
		padding int
	}{
		// 2024-01-01 is a Monday.
		{"monday start", day(2024, time.January, 10), 0},
		// 2024-09-01 is a Sunday.
		{"sunday start", day(2024, time.September, 10), 6},
		// 2024-03-01 is a Friday.
		{"friday start", day(2024, time.March, 10), 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cal := BuildCalendar(nil, 0, tc.now)
			for i := 0; i < tc.padding; i++ {
				assert.Nil(t, cal.Cells[i])
			}
			require.NotNil(t, cal.Cells[tc.padding])
			assert.Equal(t, 1, cal.Cells[tc.padding].Day)
		})
	}
}

func TestBuildCalendarSingleCompletion(t *testing.T) {
	questions := []models.Question{solved(models.StatusDone, "2024-03-15T10:00:00Z")}

	cal := BuildCalendar(questions, 0, day(2024, time.March, 20))

	assert.Equal(t, 1, cal.MonthTotal)
	assert.Equal(t, "March 2024", cal.MonthName)
	for _, c := range realCells(cal) {
		if c.Date == "2024-03-15" {
			assert.Equal(t, 1, c.Count)
			assert.Equal(t, 1, c.Level)
			continue
		}
		assert.Zero(t, c.Count, c.Date)
		assert.Zero(t, c.Level, c.Date)
	}
}

func TestBuildCalendarFourOnOneDay(t *testing.T) {
	var questions []models.Question
	for i := 0; i < 4; i++ {
		questions = append(questions, solved(models.StatusRevisit, "2024-03-02T08:00:00Z"))
	}

	cal := BuildCalendar(questions, 0, day(2024, time.March, 20))

	for _, c := range realCells(cal) {
		if c.Date == "2024-03-02" {
			assert.Equal(t, 4, c.Count)
			assert.Equal(t, 3, c.Level)
		}
	}
}

func TestBuildCalendarIgnoresNonQualifying(t *testing.T) {
	questions := []models.Question{
		solved(models.StatusTodo, "2024-03-05T10:00:00Z"),
		{Title: "no date", Status: models.StatusDone},
		{Title: "zero date", Status: models.StatusDone, CompletedAt: &time.Time{}},
		solved(models.StatusDone, "2024-02-05T10:00:00Z"),
	}

	cal := BuildCalendar(questions, 0, day(2024, time.March, 20))

	assert.Zero(t, cal.MonthTotal)
	for _, c := range realCells(cal) {
		assert.Zero(t, c.Count)
	}
}

func TestBuildCalendarMonthTotalMatchesBuckets(t *testing.T) {
	questions := []models.Question{
		solved(models.StatusDone, "2024-02-01T00:30:00Z"),
		solved(models.StatusDone, "2024-02-29T23:59:00Z"),
		solved(models.StatusRevisit, "2024-02-14T12:00:00Z"),
		solved(models.StatusDone, "2024-02-14T13:00:00Z"),
		solved(models.StatusDone, "2024-03-01T00:00:00Z"),
		solved(models.StatusDone, "2023-02-14T13:00:00Z"),
	}

	cal := BuildCalendar(questions, -1, day(2024, time.March, 20))

	sum := 0
	for _, c := range realCells(cal) {
		sum += c.Count
	}
	assert.Equal(t, 4, cal.MonthTotal)
	assert.Equal(t, cal.MonthTotal, sum)
}

func TestBuildCalendarUsesRecordedLocalDate(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC; the recorded date wins.
	questions := []models.Question{solved(models.StatusDone, "2024-03-15T23:30:00-05:00")}

	cal := BuildCalendar(questions, 0, day(2024, time.March, 20))

	for _, c := range realCells(cal) {
		if c.Date == "2024-03-15" {
			assert.Equal(t, 1, c.Count)
		}
		if c.Date == "2024-03-16" {
			assert.Zero(t, c.Count)
		}
	}
}

func TestBuildCalendarToday(t *testing.T) {
	now := day(2024, time.March, 20)

	current := BuildCalendar(nil, 0, now)
	var today []string
	for _, c := range realCells(current) {
		if c.IsToday {
			today = append(today, c.Date)
		}
	}
	assert.Equal(t, []string{"2024-03-20"}, today)
	assert.True(t, current.IsCurrentMonth)

	previous := BuildCalendar(nil, -1, now)
	assert.False(t, previous.IsCurrentMonth)
	for _, c := range realCells(previous) {
		assert.False(t, c.IsToday)
	}
}

func TestBuildCalendarCrossesYear(t *testing.T) {
	cal := BuildCalendar(nil, -3, day(2024, time.January, 31))

	assert.Equal(t, 2023, cal.Year)
	assert.Equal(t, int(time.October), cal.Month)
	assert.Len(t, realCells(cal), 31)
}

func TestBuildCalendarIdempotent(t *testing.T) {
	questions := []models.Question{
		solved(models.StatusDone, "2024-03-15T10:00:00Z"),
		solved(models.StatusRevisit, "2024-03-16T10:00:00Z"),
	}
	now := day(2024, time.March, 20)

	assert.Equal(t, BuildCalendar(questions, 0, now), BuildCalendar(questions, 0, now))
}
