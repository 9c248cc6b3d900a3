package services

import (
	"testing"

	"github.com/Kremzeeq/Salon-CRM-Project/models"
	"github.com/stretchr/testify/assert"
)

func booked(start, end string) models.Appointment {
	return models.Appointment{StartTime: start, EndTime: end}
}

func TestConsolidateFreeTimeSlots(t *testing.T) {
	tests := []struct {
		name   string
		booked []models.Appointment
		want   string
	}{
		{
			name: "whole day free",
			want: "09:00-17:00",
		},
		{
			name:   "two morning appointments",
			booked: []models.Appointment{booked("11:00", "11:40"), booked("11:40", "12:20")},
			want:   "09:00-11:00 | 12:20-17:00",
		},
		{
			name:   "appointment at day start",
			booked: []models.Appointment{booked("09:00", "10:00")},
			want:   "10:00-17:00",
		},
		{
			name:   "gap between appointments",
			booked: []models.Appointment{booked("09:00", "10:00"), booked("12:00", "13:00")},
			want:   "10:00-12:00 | 13:00-17:00",
		},
		{
			name:   "appointment before working day covers the start",
			booked: []models.Appointment{booked("08:00", "09:30")},
			want:   "09:30-17:00",
		},
		{
			name:   "inverted interval is swapped defensively",
			booked: []models.Appointment{booked("11:40", "11:00")},
			want:   "09:00-11:00 | 11:40-17:00",
		},
		{
			name:   "appointment running past day end",
			booked: []models.Appointment{booked("09:00", "17:30")},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConsolidateFreeTimeSlots(tt.booked))
		})
	}
}

func TestConsolidateFreeTimeSlotsDayFullyBooked(t *testing.T) {
	got := ConsolidateFreeTimeSlots([]models.Appointment{booked("09:00", "17:00")})
	assert.Equal(t, "", got)
}
