package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Kremzeeq/Salon-CRM-Project/config"
	"github.com/Kremzeeq/Salon-CRM-Project/models"
	"github.com/Kremzeeq/Salon-CRM-Project/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Title     *string `json:"title"`
	FirstName string  `json:"firstName" binding:"required,max=35"`
	LastName  string  `json:"lastName" binding:"required,max=35"`
	PhoneNo   *string `json:"phoneNo"`
	Email     string  `json:"email" binding:"required,email"`

	AddressLine1 *string `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2"`
	AddressLine3 *string `json:"addressLine3"`
	Town         *string `json:"town"`
	County       *string `json:"county"`
	Postcode     *string `json:"postcode"`

	PhoneIsContactable bool `json:"phoneIsContactable"`
	SMSIsContactable   bool `json:"smsIsContactable"`
	EmailIsContactable bool `json:"emailIsContactable"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	Title     *string `json:"title"`
	FirstName *string `json:"firstName" binding:"omitempty,max=35"`
	LastName  *string `json:"lastName" binding:"omitempty,max=35"`
	PhoneNo   *string `json:"phoneNo"`
	Email     *string `json:"email" binding:"omitempty,email"`

	AddressLine1 *string `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2"`
	AddressLine3 *string `json:"addressLine3"`
	Town         *string `json:"town"`
	County       *string `json:"county"`
	Postcode     *string `json:"postcode"`

	PhoneIsContactable *bool `json:"phoneIsContactable"`
	SMSIsContactable   *bool `json:"smsIsContactable"`
	EmailIsContactable *bool `json:"emailIsContactable"`

	Active *bool `json:"active"`
}

// CreateCustomer registers a new customer
func CreateCustomer(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer := models.Customer{
		ID:                 uuid.New(),
		Title:              input.Title,
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		PhoneNo:            input.PhoneNo,
		Email:              input.Email,
		Active:             true,
		AddressLine1:       input.AddressLine1,
		AddressLine2:       input.AddressLine2,
		AddressLine3:       input.AddressLine3,
		Town:               input.Town,
		County:             input.County,
		Postcode:           input.Postcode,
		PhoneIsContactable: input.PhoneIsContactable,
		SMSIsContactable:   input.SMSIsContactable,
		EmailIsContactable: input.EmailIsContactable,
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		respondCustomerSaveError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers retrieves all customers
func GetCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := config.DB.Order("last_name ASC, first_name ASC").Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a specific customer by ID
func GetCustomer(c *gin.Context) {
	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var customer models.Customer
	if err := config.DB.Preload("Appointments").First(&customer, "id = ?", customerUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer updates an existing customer's profile or active status
func UpdateCustomer(c *gin.Context) {
	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, "id = ?", customerUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Title != nil {
		customer.Title = input.Title
	}
	if input.FirstName != nil {
		customer.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		customer.LastName = *input.LastName
	}
	if input.PhoneNo != nil {
		customer.PhoneNo = input.PhoneNo
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.AddressLine1 != nil {
		customer.AddressLine1 = input.AddressLine1
	}
	if input.AddressLine2 != nil {
		customer.AddressLine2 = input.AddressLine2
	}
	if input.AddressLine3 != nil {
		customer.AddressLine3 = input.AddressLine3
	}
	if input.Town != nil {
		customer.Town = input.Town
	}
	if input.County != nil {
		customer.County = input.County
	}
	if input.Postcode != nil {
		customer.Postcode = input.Postcode
	}
	if input.PhoneIsContactable != nil {
		customer.PhoneIsContactable = *input.PhoneIsContactable
	}
	if input.SMSIsContactable != nil {
		customer.SMSIsContactable = *input.SMSIsContactable
	}
	if input.EmailIsContactable != nil {
		customer.EmailIsContactable = *input.EmailIsContactable
	}
	if input.Active != nil {
		// Activation dates are re-stamped from the flag in BeforeSave.
		customer.Active = *input.Active
	}

	if err := config.DB.Save(&customer).Error; err != nil {
		respondCustomerSaveError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes a customer; their appointments cascade with them
func DeleteCustomer(c *gin.Context) {
	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", customerUUID).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", customerUUID).Delete(&models.Customer{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// respondCustomerSaveError maps validation and uniqueness failures to the
// right status codes so callers can correct their input.
func respondCustomerSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrInvalidPostcode), errors.Is(err, utils.ErrInvalidPhoneNumber):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key"):
		utils.RespondWithError(c, http.StatusConflict, "Customer with this email or name already exists")
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save customer")
	}
}
