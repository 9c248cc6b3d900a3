package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment holds a booking for one customer on one date. StartTime and
// EndTime are "HH:MM" clock values; the zero-padded form sorts and compares
// lexicographically, which the clash and slot queries rely on. EndTime and
// Quote are derived from the selected services on save, never set by hand.
type Appointment struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Date      time.Time  `gorm:"type:date;index;not null" json:"date"`
	StartTime string     `gorm:"size:5;not null" json:"startTime"`
	EndTime   string     `gorm:"size:5" json:"endTime"`
	Quote     int        `gorm:"default:0" json:"quote"`
	DatePaid  *time.Time `gorm:"type:date" json:"datePaid"`

	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`
	Customer   Customer  `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Services []Service `gorm:"many2many:appointment_services" json:"services"`

	gorm.Model
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Label identifies an appointment in clash errors and reminder messages.
func (a *Appointment) Label() string {
	return fmt.Sprintf("Appointment %s, @%s", a.Date.Format("2006-01-02"), a.StartTime)
}
