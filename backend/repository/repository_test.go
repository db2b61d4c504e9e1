package repository

import (
	"context"
	"testing"
	"time"

	"khelkhatm/backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return New(db)
}

func seedQuestions(t *testing.T, r *Repository) []models.Question {
	t.Helper()

	questions := []models.Question{
		{Title: "#1 Two Sum", Phase: "PHASE 0", Topic: "Arrays", Status: models.StatusTodo},
		{Title: "#26 Remove Duplicates", Phase: "PHASE 0", Topic: "Arrays", Status: models.StatusTodo},
		{Title: "#344 Reverse String", Phase: "PHASE 0", Topic: "Strings", Status: models.StatusTodo},
		{Title: "#200 Number of Islands", Phase: "PHASE 2", Topic: "Graphs", Status: models.StatusTodo},
	}
	require.NoError(t, r.CreateQuestions(context.Background(), questions))
	return questions
}

func TestListQuestionsOrderAndFilter(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	seeded := seedQuestions(t, r)

	all, err := r.ListQuestions(ctx, QuestionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "#1 Two Sum", all[0].Title)
	assert.Equal(t, "#26 Remove Duplicates", all[1].Title)
	assert.Equal(t, "#344 Reverse String", all[2].Title)
	assert.Equal(t, "#200 Number of Islands", all[3].Title)

	_, err = r.UpdateQuestionStatus(ctx, seeded[2].ID, models.StatusDone, nil, time.Now())
	require.NoError(t, err)

	strings, err := r.ListQuestions(ctx, QuestionFilter{Phase: "PHASE 0", Topic: "Strings"})
	require.NoError(t, err)
	require.Len(t, strings, 1)

	done, err := r.ListQuestions(ctx, QuestionFilter{Status: models.StatusDone})
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, seeded[2].ID, done[0].ID)
}

func TestUpdateQuestionStatusKeepsCompletionInvariant(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	id := seedQuestions(t, r)[0].ID
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	q, err := r.UpdateQuestionStatus(ctx, id, models.StatusDone, nil, now)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDone, q.Status)
	require.NotNil(t, q.CompletedAt)
	assert.True(t, now.Equal(*q.CompletedAt))

	given := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
	q, err = r.UpdateQuestionStatus(ctx, id, models.StatusRevisit, &given, now)
	require.NoError(t, err)
	require.NotNil(t, q.CompletedAt)
	assert.True(t, given.Equal(*q.CompletedAt))

	q, err = r.UpdateQuestionStatus(ctx, id, models.StatusTodo, &given, now)
	require.NoError(t, err)
	assert.Equal(t, models.StatusTodo, q.Status)
	assert.Nil(t, q.CompletedAt)
}

func TestUpdateQuestionStatusErrors(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	id := seedQuestions(t, r)[0].ID

	_, err := r.UpdateQuestionStatus(ctx, id, models.Status("SKIPPED"), nil, time.Now())
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = r.UpdateQuestionStatus(ctx, uuid.New(), models.StatusDone, nil, time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddRevisionAppendsNewestFirst(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	id := seedQuestions(t, r)[0].ID

	_, err := r.UpdateQuestionStatus(ctx, id, models.StatusRevisit, nil, time.Now())
	require.NoError(t, err)
	_, err = r.AddRevision(ctx, id)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = r.UpdateQuestionStatus(ctx, id, models.StatusDone, nil, time.Now())
	require.NoError(t, err)
	q, err := r.AddRevision(ctx, id)
	require.NoError(t, err)

	require.Len(t, q.Revisions, 2)
	assert.Equal(t, models.StatusDone, q.Revisions[0].Status)
	assert.Equal(t, models.StatusRevisit, q.Revisions[1].Status)
	assert.Equal(t, id, q.Revisions[0].QuestionID)

	_, err = r.AddRevision(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConcepts(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	concepts := []models.Concept{
		{Subject: "OS", Topic: "Threads"},
		{Subject: "DBMS", Topic: "SQL"},
		{Subject: "OS", Topic: "Deadlocks"},
	}
	require.NoError(t, r.CreateConcepts(ctx, concepts))

	list, err := r.ListConcepts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "DBMS", list[0].Subject)
	assert.Equal(t, "Deadlocks", list[1].Topic)
	assert.Equal(t, models.StatusTodo, list[1].Status)

	c, err := r.UpdateConceptStatus(ctx, list[1].ID, models.StatusDone)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDone, c.Status)

	_, err = r.UpdateConceptStatus(ctx, list[1].ID, models.StatusRevisit)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = r.UpdateConceptStatus(ctx, uuid.New(), models.StatusDone)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertDailyLogUpdatesInPlace(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	morning := time.Date(2024, time.March, 15, 7, 0, 0, 0, time.UTC)
	evening := time.Date(2024, time.March, 15, 21, 0, 0, 0, time.UTC)

	first, err := r.UpsertDailyLog(ctx, DailyLogInput{Date: morning, Exercise: true})
	require.NoError(t, err)

	notes := "long run"
	second, err := r.UpsertDailyLog(ctx, DailyLogInput{Date: evening, Exercise: true, Coding: true, Notes: &notes})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.Coding)
	require.NotNil(t, second.Notes)
	assert.Equal(t, "long run", *second.Notes)
	assert.Equal(t, "2024-03-15", second.DayKey())

	logs, err := r.ListDailyLogs(ctx, 30)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestListDailyLogsNewestFirstWithLimit(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := r.UpsertDailyLog(ctx, DailyLogInput{Date: start.AddDate(0, 0, i), Coding: true})
		require.NoError(t, err)
	}

	logs, err := r.ListDailyLogs(ctx, 3)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "2024-03-05", logs[0].DayKey())
	assert.Equal(t, "2024-03-03", logs[2].DayKey())
}

func TestSummary(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	seeded := seedQuestions(t, r)
	require.NoError(t, r.CreateConcepts(ctx, []models.Concept{
		{Subject: "OS", Topic: "Threads", Status: models.StatusDone},
		{Subject: "OS", Topic: "Deadlocks"},
	}))

	_, err := r.UpdateQuestionStatus(ctx, seeded[0].ID, models.StatusDone, nil, time.Now())
	require.NoError(t, err)
	_, err = r.UpdateQuestionStatus(ctx, seeded[1].ID, models.StatusRevisit, nil, time.Now())
	require.NoError(t, err)
	_, err = r.UpsertDailyLog(ctx, DailyLogInput{Date: time.Now(), Exercise: true})
	require.NoError(t, err)

	s, err := r.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DSASummary{Total: 4, Done: 1, Revisit: 1}, s.DSA)
	assert.Equal(t, models.CSSummary{Total: 2, Done: 1}, s.CS)
	assert.Equal(t, int64(1), s.Exercise.Days)
	assert.Equal(t, int64(0), s.Coding.Days)
}

func TestResetCatalogKeepsDailyLogs(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	seeded := seedQuestions(t, r)
	_, err := r.AddRevision(ctx, seeded[0].ID)
	require.NoError(t, err)
	_, err = r.UpsertDailyLog(ctx, DailyLogInput{Date: time.Now(), Coding: true})
	require.NoError(t, err)

	require.NoError(t, r.ResetCatalog(ctx))

	s, err := r.Summary(ctx)
	require.NoError(t, err)
	assert.Zero(t, s.DSA.Total)
	assert.Equal(t, int64(1), s.Coding.Days)
}
