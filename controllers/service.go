// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/Kremzeeq/Salon-CRM-Project/config"
	"github.com/Kremzeeq/Salon-CRM-Project/models"
	"github.com/Kremzeeq/Salon-CRM-Project/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name             string `json:"name" binding:"required,max=35"`
	Price            int    `json:"price" binding:"min=0"`
	EstimatedMinutes int    `json:"estimatedMinutes" binding:"min=0"`
}

// CreateService adds a catalog entry
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := models.Service{
		ID:               uuid.New(),
		Name:             input.Name,
		Price:            input.Price,
		EstimatedMinutes: input.EstimatedMinutes,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices retrieves the full service catalog
func GetServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Order("name ASC").Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetService retrieves a specific service by ID
func GetService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}
