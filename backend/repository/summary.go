package repository

import (
	"context"
	"fmt"

	"khelkhatm/backend/models"
)

// Summary counts records by status. It is the authoritative recount that
// replaces any optimistic adjustment made by a client.
func (r *Repository) Summary(ctx context.Context) (*models.Summary, error) {
	db := r.DB.WithContext(ctx)
	var s models.Summary

	counts := []struct {
		dest  *int64
		model interface{}
		where string
		args  []interface{}
	}{
		{&s.DSA.Total, &models.Question{}, "", nil},
		{&s.DSA.Done, &models.Question{}, "status = ?", []interface{}{models.StatusDone}},
		{&s.DSA.Revisit, &models.Question{}, "status = ?", []interface{}{models.StatusRevisit}},
		{&s.CS.Total, &models.Concept{}, "", nil},
		{&s.CS.Done, &models.Concept{}, "status = ?", []interface{}{models.StatusDone}},
		{&s.Exercise.Days, &models.DailyLog{}, "exercise = ?", []interface{}{true}},
		{&s.Coding.Days, &models.DailyLog{}, "coding = ?", []interface{}{true}},
	}

	for _, c := range counts {
		query := db.Model(c.model)
		if c.where != "" {
			query = query.Where(c.where, c.args...)
		}
		if err := query.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("summary: %w", err)
		}
	}

	return &s, nil
}
