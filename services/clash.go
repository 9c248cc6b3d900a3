// services/clash.go
package services

import (
	"fmt"

	"github.com/Kremzeeq/Salon-CRM-Project/models"
	"github.com/google/uuid"
)

// ClashError reports a candidate appointment overlapping an existing one on
// the same date. It carries the conflicting appointment so callers can tell
// the user what to move.
type ClashError struct {
	Conflicting models.Appointment
}

func (e *ClashError) Error() string {
	return fmt.Sprintf("please select another appointment time. Clashes with %s", e.Conflicting.Label())
}

// FindClash checks a candidate [startTime, endTime) interval against the
// other appointments booked on the same date. Intervals are half-open:
// back-to-back appointments where one ends exactly when the next starts do
// not clash. The candidate itself is excluded by id; the first overlap found
// is returned. The "HH:MM" values compare lexicographically.
func FindClash(candidateID uuid.UUID, startTime, endTime string, sameDay []models.Appointment) *ClashError {
	for _, other := range sameDay {
		if other.ID == candidateID {
			continue
		}
		if other.StartTime < endTime && other.EndTime > startTime {
			return &ClashError{Conflicting: other}
		}
	}
	return nil
}
