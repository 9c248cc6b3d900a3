package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is a catalog entry. Reference data: appointments share services,
// they never own them.
type Service struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name             string    `gorm:"size:35;not null" json:"name"`
	Price            int       `gorm:"not null" json:"price"`
	EstimatedMinutes int       `gorm:"not null" json:"estimatedMinutes"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
