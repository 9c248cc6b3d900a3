package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Kremzeeq/Salon-CRM-Project/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appointmentReaderStub struct {
	byDate   map[string][]models.Appointment
	dates    []time.Time
	datesErr error
	readErr  error
}

func (s *appointmentReaderStub) DistinctAppointmentDates() ([]time.Time, error) {
	if s.datesErr != nil {
		return nil, s.datesErr
	}
	return s.dates, nil
}

func (s *appointmentReaderStub) AppointmentsByDate(date time.Time) ([]models.Appointment, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.byDate[date.Format("2006-01-02")], nil
}

func TestAppointmentSummaryReport(t *testing.T) {
	date := time.Date(2019, time.April, 9, 0, 0, 0, 0, time.UTC)
	paid := date

	stub := &appointmentReaderStub{
		dates: []time.Time{date},
		byDate: map[string][]models.Appointment{
			"2019-04-09": {
				{StartTime: "11:00", EndTime: "11:40", Quote: 40, DatePaid: &paid},
				{StartTime: "11:40", EndTime: "12:20", Quote: 40},
			},
		},
	}

	report, err := NewReportMaker(stub).AppointmentSummaryReport()
	require.NoError(t, err)

	assert.True(t, report.Success)
	require.Len(t, report.AppointmentSummary, 1)

	summary := report.AppointmentSummary[0]
	assert.Equal(t, "2019-04-09", summary.Date)
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 80, summary.ForecastedIncome)
	assert.Equal(t, 40, summary.PaidIncome)
	assert.Equal(t, "09:00-11:00 | 12:20-17:00", summary.TimeSlotsAvailable)
}

func TestAppointmentSummaryReportPreservesDateOrder(t *testing.T) {
	first := time.Date(2019, time.April, 9, 0, 0, 0, 0, time.UTC)
	second := time.Date(2019, time.April, 10, 0, 0, 0, 0, time.UTC)

	stub := &appointmentReaderStub{
		dates: []time.Time{first, second},
		byDate: map[string][]models.Appointment{
			"2019-04-09": {{StartTime: "11:00", EndTime: "11:40", Quote: 40}},
			"2019-04-10": {{StartTime: "09:00", EndTime: "10:00", Quote: 25}},
		},
	}

	report, err := NewReportMaker(stub).AppointmentSummaryReport()
	require.NoError(t, err)

	require.Len(t, report.AppointmentSummary, 2)
	assert.Equal(t, "2019-04-09", report.AppointmentSummary[0].Date)
	assert.Equal(t, "2019-04-10", report.AppointmentSummary[1].Date)
}

func TestAppointmentSummaryReportNoAppointments(t *testing.T) {
	report, err := NewReportMaker(&appointmentReaderStub{}).AppointmentSummaryReport()
	require.NoError(t, err)

	assert.True(t, report.Success)
	assert.Empty(t, report.AppointmentSummary)
}

func TestAppointmentSummaryReportUnpaidOnly(t *testing.T) {
	date := time.Date(2019, time.April, 9, 0, 0, 0, 0, time.UTC)
	stub := &appointmentReaderStub{
		dates: []time.Time{date},
		byDate: map[string][]models.Appointment{
			"2019-04-09": {{StartTime: "11:00", EndTime: "11:40", Quote: 40}},
		},
	}

	report, err := NewReportMaker(stub).AppointmentSummaryReport()
	require.NoError(t, err)

	summary := report.AppointmentSummary[0]
	assert.Equal(t, 40, summary.ForecastedIncome)
	assert.Zero(t, summary.PaidIncome)
}

func TestAppointmentSummaryReportStoreErrors(t *testing.T) {
	_, err := NewReportMaker(&appointmentReaderStub{datesErr: errors.New("db down")}).AppointmentSummaryReport()
	assert.Error(t, err)

	stub := &appointmentReaderStub{
		dates:   []time.Time{time.Date(2019, time.April, 9, 0, 0, 0, 0, time.UTC)},
		readErr: errors.New("db down"),
	}
	_, err = NewReportMaker(stub).AppointmentSummaryReport()
	assert.Error(t, err)
}
