package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Todo struct {
	ID        string `gorm:"type:text;primaryKey" json:"id"`
	Text      string `gorm:"not null" json:"text"`
	Completed bool   `gorm:"default:false" json:"completed"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (t *Todo) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.CreatedAt = time.Now().Format(time.RFC3339)
	t.UpdatedAt = t.CreatedAt
	return
}
