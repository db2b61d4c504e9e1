package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Status string

const (
	StatusTodo    Status = "TODO"
	StatusRevisit Status = "REVISIT"
	StatusDone    Status = "DONE"
)

// Solved reports whether a question in this status counts as completed.
func (s Status) Solved() bool {
	return s == StatusDone || s == StatusRevisit
}

func (s Status) ValidForQuestion() bool {
	return s == StatusTodo || s == StatusRevisit || s == StatusDone
}

func (s Status) ValidForConcept() bool {
	return s == StatusTodo || s == StatusDone
}

type Question struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Link        *string    `json:"link"`
	Phase       string     `gorm:"index;not null" json:"phase"`
	Topic       string     `gorm:"index;not null" json:"topic"`
	Status      Status     `gorm:"index;not null;default:TODO" json:"status"`
	CompletedAt *time.Time `json:"completedAt"`
	Revisions   []Revision `gorm:"constraint:OnDelete:CASCADE" json:"revisions"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// Revision is an append-only snapshot of a question's status.
type Revision struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;index;not null" json:"questionId"`
	Status     Status    `gorm:"not null" json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (r *Revision) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
