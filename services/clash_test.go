package services

import (
	"testing"
	"time"

	"github.com/Kremzeeq/Salon-CRM-Project/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookedAppointment(start, end string) models.Appointment {
	return models.Appointment{
		ID:        uuid.New(),
		Date:      time.Date(2019, time.April, 9, 0, 0, 0, 0, time.UTC),
		StartTime: start,
		EndTime:   end,
	}
}

func TestFindClashBackToBackDoesNotClash(t *testing.T) {
	sameDay := []models.Appointment{bookedAppointment("11:00", "11:40")}

	clash := FindClash(uuid.New(), "11:40", "12:30", sameDay)
	assert.Nil(t, clash)
}

func TestFindClashOverlapDetected(t *testing.T) {
	existing := bookedAppointment("11:00", "11:40")

	clash := FindClash(uuid.New(), "11:20", "12:00", []models.Appointment{existing})
	require.NotNil(t, clash)
	assert.Equal(t, existing.ID, clash.Conflicting.ID)
	assert.Contains(t, clash.Error(), "Clashes with")
}

func TestFindClashCandidateCoveredByExisting(t *testing.T) {
	sameDay := []models.Appointment{bookedAppointment("10:00", "13:00")}

	clash := FindClash(uuid.New(), "11:00", "11:30", sameDay)
	assert.NotNil(t, clash)
}

func TestFindClashExcludesCandidateItself(t *testing.T) {
	existing := bookedAppointment("11:00", "11:40")

	// Re-saving the same appointment over its own interval is fine.
	clash := FindClash(existing.ID, "11:00", "11:40", []models.Appointment{existing})
	assert.Nil(t, clash)
}

func TestFindClashReturnsFirstConflict(t *testing.T) {
	first := bookedAppointment("09:30", "10:30")
	second := bookedAppointment("10:30", "11:30")

	clash := FindClash(uuid.New(), "10:00", "11:00", []models.Appointment{first, second})
	require.NotNil(t, clash)
	assert.Equal(t, first.ID, clash.Conflicting.ID)
}

func TestFindClashEmptyDay(t *testing.T) {
	assert.Nil(t, FindClash(uuid.New(), "09:00", "17:00", nil))
}
