package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyLog holds the habit flags of one calendar day. Date is unique and
// always stored at midnight UTC.
type DailyLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Date      time.Time `gorm:"type:date;uniqueIndex;not null" json:"date"`
	Exercise  bool      `gorm:"not null;default:false" json:"exercise"`
	Coding    bool      `gorm:"not null;default:false" json:"coding"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (l *DailyLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// DayKey returns the log's calendar date as YYYY-MM-DD.
func (l DailyLog) DayKey() string {
	return l.Date.UTC().Format("2006-01-02")
}

// All lists every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{
		&Question{},
		&Revision{},
		&Concept{},
		&DailyLog{},
	}
}
