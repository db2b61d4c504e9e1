package repository

import (
	"context"
	"fmt"

	"khelkhatm/backend/models"

	"github.com/google/uuid"
)

func (r *Repository) ListConcepts(ctx context.Context) ([]models.Concept, error) {
	var concepts []models.Concept
	if err := r.DB.WithContext(ctx).Order("subject ASC").Order("topic ASC").Find(&concepts).Error; err != nil {
		return nil, fmt.Errorf("list concepts: %w", err)
	}
	return concepts, nil
}

func (r *Repository) UpdateConceptStatus(ctx context.Context, id uuid.UUID, status models.Status) (*models.Concept, error) {
	if !status.ValidForConcept() {
		return nil, ErrInvalidStatus
	}

	res := r.DB.WithContext(ctx).Model(&models.Concept{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, fmt.Errorf("update concept: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var c models.Concept
	if err := r.DB.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *Repository) CreateConcepts(ctx context.Context, concepts []models.Concept) error {
	if len(concepts) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).CreateInBatches(concepts, 100).Error
}
