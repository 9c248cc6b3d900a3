// controllers/appointment.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Kremzeeq/Salon-CRM-Project/config"
	"github.com/Kremzeeq/Salon-CRM-Project/models"
	"github.com/Kremzeeq/Salon-CRM-Project/services"
	"github.com/Kremzeeq/Salon-CRM-Project/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateAppointmentInput defines the expected JSON structure for booking an
// appointment. The full service set is an explicit parameter: end time and
// quote are derived from it before anything is written.
type CreateAppointmentInput struct {
	CustomerID uuid.UUID   `json:"customerId" binding:"required"`
	Date       string      `json:"date" binding:"required"`      // YYYY-MM-DD
	StartTime  string      `json:"startTime" binding:"required"` // HH:MM
	ServiceIDs []uuid.UUID `json:"serviceIds"`
	DatePaid   *string     `json:"datePaid"` // YYYY-MM-DD
}

// UpdateAppointmentInput defines the expected JSON structure for rescheduling
// or settling an appointment. ClearDatePaid unsets a payment recorded in error.
type UpdateAppointmentInput struct {
	Date          *string      `json:"date"`
	StartTime     *string      `json:"startTime"`
	ServiceIDs    *[]uuid.UUID `json:"serviceIds"`
	DatePaid      *string      `json:"datePaid"`
	ClearDatePaid bool         `json:"clearDatePaid"`
}

// CreateAppointment books an appointment in a single write: the service set
// is resolved first, end time and quote are computed, then the clash check
// and the insert run inside one transaction.
func CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := time.Parse(utils.DateLayout, input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date: expected YYYY-MM-DD")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, "id = ?", input.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	selected, ok := resolveServices(c, input.ServiceIDs)
	if !ok {
		return
	}

	schedule, err := services.ComputeSchedule(selected, input.StartTime)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	appointment := models.Appointment{
		ID:         uuid.New(),
		Date:       utils.BeginningOfDay(date),
		StartTime:  schedule.StartTime,
		EndTime:    schedule.EndTime,
		CustomerID: customer.ID,
		Services:   selected,
	}
	if schedule.EndTime != schedule.StartTime {
		appointment.Quote = schedule.Quote
	}
	if input.DatePaid != nil {
		datePaid, err := time.Parse(utils.DateLayout, *input.DatePaid)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid datePaid: expected YYYY-MM-DD")
			return
		}
		appointment.DatePaid = &datePaid
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		// Re-read the day's bookings inside the transaction so two
		// concurrent creations for the same slot cannot both pass.
		sameDay, err := services.NewAppointmentStore(tx).AppointmentsByDate(appointment.Date)
		if err != nil {
			return err
		}
		if clash := services.FindClash(appointment.ID, appointment.StartTime, appointment.EndTime, sameDay); clash != nil {
			return clash
		}
		return tx.Create(&appointment).Error
	})
	if err != nil {
		respondAppointmentSaveError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// GetAppointments lists appointments, optionally filtered to one date with
// ?date=YYYY-MM-DD. Most recent dates first, mornings before afternoons.
func GetAppointments(c *gin.Context) {
	query := config.DB.Preload("Services").Order("date DESC, start_time ASC")

	if rawDate := c.Query("date"); rawDate != "" {
		date, err := time.Parse(utils.DateLayout, rawDate)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date: expected YYYY-MM-DD")
			return
		}
		query = query.Where("date = ?", date.Format(utils.DateLayout))
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves a specific appointment by ID
func GetAppointment(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var appointment models.Appointment
	if err := config.DB.Preload("Services").First(&appointment, "id = ?", appointmentUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// UpdateAppointment reschedules an appointment or records payment. End time
// and quote are recomputed from the effective service set; the clash check
// runs against the target date inside the same transaction as the save.
func UpdateAppointment(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var appointment models.Appointment
	if err := config.DB.Preload("Services").First(&appointment, "id = ?", appointmentUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Date != nil {
		date, err := time.Parse(utils.DateLayout, *input.Date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date: expected YYYY-MM-DD")
			return
		}
		appointment.Date = utils.BeginningOfDay(date)
	}
	if input.StartTime != nil {
		appointment.StartTime = *input.StartTime
	}
	switch {
	case input.ClearDatePaid:
		appointment.DatePaid = nil
	case input.DatePaid != nil:
		datePaid, err := time.Parse(utils.DateLayout, *input.DatePaid)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid datePaid: expected YYYY-MM-DD")
			return
		}
		appointment.DatePaid = &datePaid
	}

	selected := appointment.Services
	replaceServices := false
	if input.ServiceIDs != nil {
		var ok bool
		if selected, ok = resolveServices(c, *input.ServiceIDs); !ok {
			return
		}
		replaceServices = true
	}

	schedule, err := services.ComputeSchedule(selected, appointment.StartTime)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	appointment.StartTime = schedule.StartTime
	appointment.EndTime = schedule.EndTime
	if schedule.EndTime != schedule.StartTime {
		appointment.Quote = schedule.Quote
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		sameDay, err := services.NewAppointmentStore(tx).AppointmentsByDate(appointment.Date)
		if err != nil {
			return err
		}
		if clash := services.FindClash(appointment.ID, appointment.StartTime, appointment.EndTime, sameDay); clash != nil {
			return clash
		}
		if replaceServices {
			assoc := tx.Model(&appointment).Association("Services")
			if len(selected) == 0 {
				if err := assoc.Clear(); err != nil {
					return err
				}
			} else if err := assoc.Replace(selected); err != nil {
				return err
			}
		}
		return tx.Omit("Services").Save(&appointment).Error
	})
	if err != nil {
		respondAppointmentSaveError(c, err)
		return
	}

	appointment.Services = selected
	c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment cancels an appointment
func DeleteAppointment(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	result := config.DB.Where("id = ?", appointmentUUID).Delete(&models.Appointment{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}

// resolveServices loads the full service set for an appointment up front.
// Responds with 400 and returns ok=false when any id is unknown.
func resolveServices(c *gin.Context, serviceIDs []uuid.UUID) ([]models.Service, bool) {
	if len(serviceIDs) == 0 {
		return nil, true
	}

	var selected []models.Service
	if err := config.DB.Where("id IN ?", serviceIDs).Find(&selected).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to resolve services")
		return nil, false
	}
	if len(selected) != len(serviceIDs) {
		utils.RespondWithError(c, http.StatusBadRequest, "One or more services not found")
		return nil, false
	}
	return selected, true
}

// respondAppointmentSaveError maps a scheduling clash to 409 with the
// conflicting appointment named, everything else to 500.
func respondAppointmentSaveError(c *gin.Context, err error) {
	var clash *services.ClashError
	if errors.As(err, &clash) {
		utils.RespondWithError(c, http.StatusConflict, clash.Error())
		return
	}
	utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save appointment")
}
