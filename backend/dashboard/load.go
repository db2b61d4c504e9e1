package dashboard

import (
	"context"
	"fmt"

	"khelkhatm/backend/models"
	"khelkhatm/backend/repository"
)

// LogWindow is how many recent daily logs a State holds.
const LogWindow = 30

// Store is the read side of the repository a State is loaded from.
type Store interface {
	ListQuestions(ctx context.Context, filter repository.QuestionFilter) ([]models.Question, error)
	ListConcepts(ctx context.Context) ([]models.Concept, error)
	ListDailyLogs(ctx context.Context, limit int) ([]models.DailyLog, error)
	Summary(ctx context.Context) (*models.Summary, error)
}

// Load reads a fresh State. The summary is the authoritative recount.
func Load(ctx context.Context, store Store, dailyTarget int) (*State, error) {
	questions, err := store.ListQuestions(ctx, repository.QuestionFilter{})
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	concepts, err := store.ListConcepts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load concepts: %w", err)
	}
	logs, err := store.ListDailyLogs(ctx, LogWindow)
	if err != nil {
		return nil, fmt.Errorf("load daily logs: %w", err)
	}
	summary, err := store.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("load summary: %w", err)
	}

	state := &State{
		Questions:   questions,
		Concepts:    concepts,
		Logs:        logs,
		DailyTarget: dailyTarget,
	}
	state.ApplySummary(summary)
	return state, nil
}
