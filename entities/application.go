package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Application is a microfinance intake record. Status is a free-form string;
// it starts as "pending" and any value may be written later.
type Application struct {
	ID        string `gorm:"type:text;primaryKey" json:"id"`
	Name      string `json:"name"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Status    string `json:"status"`
	Token     string `json:"token,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Status == "" {
		a.Status = "pending"
	}
	a.CreatedAt = time.Now().Format(time.RFC3339)
	a.UpdatedAt = a.CreatedAt
	return
}
