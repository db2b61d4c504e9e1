package repository

import (
	"context"
	"fmt"
	"time"

	"khelkhatm/backend/models"

	"gorm.io/gorm/clause"
)

type DailyLogInput struct {
	Date     time.Time
	Exercise bool
	Coding   bool
	Notes    *string
}

// CalendarDate keeps the year, month and day of t and returns midnight UTC.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r *Repository) ListDailyLogs(ctx context.Context, limit int) ([]models.DailyLog, error) {
	query := r.DB.WithContext(ctx).Order("date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var logs []models.DailyLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list daily logs: %w", err)
	}
	return logs, nil
}

// UpsertDailyLog writes the log for in.Date, updating the existing row for
// that date in place.
func (r *Repository) UpsertDailyLog(ctx context.Context, in DailyLogInput) (*models.DailyLog, error) {
	date := CalendarDate(in.Date)
	log := models.DailyLog{
		Date:     date,
		Exercise: in.Exercise,
		Coding:   in.Coding,
		Notes:    in.Notes,
	}

	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"exercise", "coding", "notes", "updated_at"}),
	}).Create(&log).Error
	if err != nil {
		return nil, fmt.Errorf("upsert daily log: %w", err)
	}

	var stored models.DailyLog
	if err := r.DB.WithContext(ctx).Where("date = ?", date).First(&stored).Error; err != nil {
		return nil, notFound(err)
	}
	return &stored, nil
}
