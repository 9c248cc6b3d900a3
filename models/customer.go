package models

import (
	"time"

	"github.com/Kremzeeq/Salon-CRM-Project/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title     *string   `gorm:"size:35" json:"title"`
	FirstName string    `gorm:"size:35;not null;uniqueIndex:idx_customer_identity,priority:1" json:"firstName"`
	LastName  string    `gorm:"size:35;not null;uniqueIndex:idx_customer_identity,priority:2" json:"lastName"`
	PhoneNo   *string   `gorm:"size:14" json:"phoneNo"`
	Email     string    `gorm:"not null;uniqueIndex;uniqueIndex:idx_customer_identity,priority:3" json:"email"`

	Active          bool       `gorm:"default:true" json:"active"`
	DateActivated   *time.Time `gorm:"type:date" json:"dateActivated"`
	DateDeactivated *time.Time `gorm:"type:date" json:"dateDeactivated"`

	AddressLine1 *string `gorm:"size:35" json:"addressLine1"`
	AddressLine2 *string `gorm:"size:35" json:"addressLine2"`
	AddressLine3 *string `gorm:"size:35" json:"addressLine3"`
	Town         *string `gorm:"size:35" json:"town"`
	County       *string `gorm:"size:35" json:"county"`
	Postcode     *string `gorm:"size:8" json:"postcode"`

	PhoneIsContactable bool `gorm:"default:false" json:"phoneIsContactable"`
	SMSIsContactable   bool `gorm:"default:false" json:"smsIsContactable"`
	EmailIsContactable bool `gorm:"default:false" json:"emailIsContactable"`

	Appointments []Appointment `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"appointments,omitempty"`

	gorm.Model
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// BeforeSave normalizes contact fields and keeps the activation dates in
// step with the active flag. Invalid postcode or phone input blocks the
// write.
func (c *Customer) BeforeSave(tx *gorm.DB) error {
	postcode, err := utils.ValidatePostcode(c.Postcode)
	if err != nil {
		return err
	}
	c.Postcode = postcode

	phoneNo, err := utils.ValidatePhoneNo(c.PhoneNo)
	if err != nil {
		return err
	}
	c.PhoneNo = phoneNo

	c.Email = utils.NormalizeEmail(c.Email)
	c.RefreshActiveStatus(time.Now())
	return nil
}

// RefreshActiveStatus resets the activation dates from the active flag.
// Deactivating stamps date_deactivated with today and clears
// date_activated; any save of an active customer re-stamps date_activated,
// even when it was already set. Exactly one of the two dates is non-nil
// after a save.
func (c *Customer) RefreshActiveStatus(now time.Time) {
	today := utils.BeginningOfDay(now)
	if !c.Active && c.DateDeactivated == nil {
		c.DateActivated = nil
		c.DateDeactivated = &today
	} else if c.Active {
		c.DateActivated = &today
		c.DateDeactivated = nil
	}
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
