// services/schedule.go
package services

import (
	"time"

	"github.com/Kremzeeq/Salon-CRM-Project/models"
	"github.com/Kremzeeq/Salon-CRM-Project/utils"
)

// Schedule is the derived timing and pricing of one appointment.
type Schedule struct {
	StartTime string
	EndTime   string
	Quote     int
}

// ComputeSchedule derives an appointment's end time and quote from its
// selected services and "HH:MM" start time. Pure wall-clock arithmetic: the
// start is anchored to a fixed calendar date so minute overflow rolls hours
// correctly. An empty service set yields end == start and a zero quote.
func ComputeSchedule(selected []models.Service, startTime string) (Schedule, error) {
	start, err := utils.ParseTimeOfDay(startTime)
	if err != nil {
		return Schedule{}, err
	}

	totalMinutes := 0
	quote := 0
	for _, service := range selected {
		totalMinutes += service.EstimatedMinutes
		quote += service.Price
	}

	end := start.Add(time.Duration(totalMinutes) * time.Minute)
	return Schedule{
		StartTime: utils.FormatTimeOfDay(start),
		EndTime:   utils.FormatTimeOfDay(end),
		Quote:     quote,
	}, nil
}
