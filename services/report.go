// services/report.go
package services

import (
	"time"

	"github.com/Kremzeeq/Salon-CRM-Project/models"
)

// AppointmentReader is the read side of the appointment store needed for
// reporting. Dates come back ascending; appointments for a date come back
// ordered by start time.
type AppointmentReader interface {
	DistinctAppointmentDates() ([]time.Time, error)
	AppointmentsByDate(date time.Time) ([]models.Appointment, error)
}

// DailySummary is one date's row in the appointment summary report.
type DailySummary struct {
	Date               string `json:"date"`
	Count              int    `json:"count"`
	ForecastedIncome   int    `json:"forecastedIncome"`
	PaidIncome         int    `json:"paidIncome"`
	TimeSlotsAvailable string `json:"timeSlotsAvailable"`
}

// SummaryReport is the single contract the presentation layer consumes.
type SummaryReport struct {
	Success            bool           `json:"success"`
	AppointmentSummary []DailySummary `json:"appointmentSummary"`
}

// ReportMaker aggregates per-date income and availability over the
// appointment store.
type ReportMaker struct {
	store AppointmentReader
}

func NewReportMaker(store AppointmentReader) *ReportMaker {
	return &ReportMaker{store: store}
}

// AppointmentSummaryReport builds one DailySummary per date that has at
// least one appointment, in ascending date order. Forecasted income counts
// every quote; paid income counts only quotes with a recorded payment date.
func (rm *ReportMaker) AppointmentSummaryReport() (SummaryReport, error) {
	dates, err := rm.store.DistinctAppointmentDates()
	if err != nil {
		return SummaryReport{}, err
	}

	summaries := make([]DailySummary, 0, len(dates))
	for _, date := range dates {
		appointments, err := rm.store.AppointmentsByDate(date)
		if err != nil {
			return SummaryReport{}, err
		}

		summary := DailySummary{
			Date:               date.Format("2006-01-02"),
			Count:              len(appointments),
			TimeSlotsAvailable: ConsolidateFreeTimeSlots(appointments),
		}
		for _, appointment := range appointments {
			summary.ForecastedIncome += appointment.Quote
			if appointment.DatePaid != nil {
				summary.PaidIncome += appointment.Quote
			}
		}
		summaries = append(summaries, summary)
	}

	return SummaryReport{Success: true, AppointmentSummary: summaries}, nil
}
