// controllers/report.go
package controllers

import (
	"net/http"

	"github.com/Kremzeeq/Salon-CRM-Project/config"
	"github.com/Kremzeeq/Salon-CRM-Project/services"
	"github.com/Kremzeeq/Salon-CRM-Project/utils"

	"github.com/gin-gonic/gin"
)

// ReportController handles all reporting functions
type ReportController struct{}

// GetAppointmentSummaryReport returns one summary row per date with
// appointments: booking count, forecasted and paid income, and the free
// time slots left in the working day.
func (rc *ReportController) GetAppointmentSummaryReport(c *gin.Context) {
	reportMaker := services.NewReportMaker(services.NewAppointmentStore(config.DB))

	report, err := reportMaker.AppointmentSummaryReport()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build appointment summary report")
		return
	}

	c.JSON(http.StatusOK, report)
}
