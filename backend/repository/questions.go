package repository

import (
	"context"
	"fmt"
	"time"

	"khelkhatm/backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuestionFilter narrows ListQuestions. Empty fields match everything.
type QuestionFilter struct {
	Phase  string
	Topic  string
	Status models.Status
}

func newestRevisions(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

func (r *Repository) ListQuestions(ctx context.Context, filter QuestionFilter) ([]models.Question, error) {
	query := r.DB.WithContext(ctx).Preload("Revisions", newestRevisions)

	if filter.Phase != "" {
		query = query.Where("phase = ?", filter.Phase)
	}
	if filter.Topic != "" {
		query = query.Where("topic = ?", filter.Topic)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var questions []models.Question
	if err := query.Order("phase ASC").Order("topic ASC").Order("title ASC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

func (r *Repository) GetQuestion(ctx context.Context, id uuid.UUID) (*models.Question, error) {
	var q models.Question
	err := r.DB.WithContext(ctx).Preload("Revisions", newestRevisions).First(&q, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &q, nil
}

// UpdateQuestionStatus sets the status and keeps completedAt present exactly
// when the question is DONE or REVISIT. A missing completedAt for a solved
// status defaults to now.
func (r *Repository) UpdateQuestionStatus(ctx context.Context, id uuid.UUID, status models.Status, completedAt *time.Time, now time.Time) (*models.Question, error) {
	if !status.ValidForQuestion() {
		return nil, ErrInvalidStatus
	}

	var completed *time.Time
	if status.Solved() {
		completed = completedAt
		if completed == nil {
			completed = &now
		}
	}

	res := r.DB.WithContext(ctx).Model(&models.Question{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       status,
			"completed_at": completed,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("update question: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return r.GetQuestion(ctx, id)
}

// AddRevision records the question's current status as a new revision.
func (r *Repository) AddRevision(ctx context.Context, id uuid.UUID) (*models.Question, error) {
	q, err := r.GetQuestion(ctx, id)
	if err != nil {
		return nil, err
	}

	rev := models.Revision{QuestionID: q.ID, Status: q.Status}
	if err := r.DB.WithContext(ctx).Create(&rev).Error; err != nil {
		return nil, fmt.Errorf("create revision: %w", err)
	}

	return r.GetQuestion(ctx, id)
}

func (r *Repository) CreateQuestions(ctx context.Context, questions []models.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).CreateInBatches(questions, 100).Error
}
