// services/appointment_store.go
package services

import (
	"time"

	"github.com/Kremzeeq/Salon-CRM-Project/models"
	"gorm.io/gorm"
)

// AppointmentStore is the gorm-backed AppointmentReader. Controllers hand it
// either the shared connection or a transaction handle, so the clash check
// can re-read the day's bookings inside the same transaction that commits
// the write.
type AppointmentStore struct {
	db *gorm.DB
}

func NewAppointmentStore(db *gorm.DB) *AppointmentStore {
	return &AppointmentStore{db: db}
}

// DistinctAppointmentDates lists every date with at least one appointment,
// ascending.
func (s *AppointmentStore) DistinctAppointmentDates() ([]time.Time, error) {
	var dates []time.Time
	err := s.db.Model(&models.Appointment{}).
		Where("deleted_at IS NULL").
		Distinct("date").
		Order("date ASC").
		Pluck("date", &dates).Error
	return dates, err
}

// AppointmentsByDate returns the appointments booked on one date, ordered by
// start time.
func (s *AppointmentStore) AppointmentsByDate(date time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.Where("date = ?", date.Format("2006-01-02")).
		Order("start_time ASC").
		Find(&appointments).Error
	return appointments, err
}
