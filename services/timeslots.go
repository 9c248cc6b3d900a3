// services/timeslots.go
package services

import (
	"strings"

	"github.com/Kremzeeq/Salon-CRM-Project/models"
)

// Working day boundaries for free-slot consolidation.
const (
	DayStartTime = "09:00"
	DayEndTime   = "17:00"
)

// ConsolidateFreeTimeSlots sweeps the booked intervals of one date, in
// ascending start-time order, and returns the complementary free intervals
// within the 09:00-17:00 working day as "HH:MM-HH:MM" segments joined by
// " | ". A completely free day yields the single segment "09:00-17:00"; a
// fully booked day yields the empty string. Overlaps are prevented upstream,
// but inverted pairs (start > end) are tolerated by swapping.
func ConsolidateFreeTimeSlots(booked []models.Appointment) string {
	var freeSlots []string
	cursor := DayStartTime

	for _, appointment := range booked {
		start, end := appointment.StartTime, appointment.EndTime
		if start > end {
			start, end = end, start
		}
		if start <= cursor {
			// Already covered up to this appointment's end; no gap here.
			if end > cursor {
				cursor = end
			}
			continue
		}
		freeSlots = append(freeSlots, cursor+"-"+start)
		cursor = end
	}

	if cursor < DayEndTime {
		freeSlots = append(freeSlots, cursor+"-"+DayEndTime)
	}
	return strings.Join(freeSlots, " | ")
}
