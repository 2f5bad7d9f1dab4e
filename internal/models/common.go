package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel carries the store-assigned identity and the system-managed
// timestamps shared by every persisted record.
type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate assigns a UUID when the caller did not provide one.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// IsValidID reports whether id has the shape of a store identifier. Malformed
// ids are rejected before any database round-trip.
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
