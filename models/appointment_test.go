package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentLabel(t *testing.T) {
	appointment := Appointment{
		Date:      time.Date(2019, time.April, 9, 0, 0, 0, 0, time.UTC),
		StartTime: "11:00",
	}
	assert.Equal(t, "Appointment 2019-04-09, @11:00", appointment.Label())
}
