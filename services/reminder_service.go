// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Kremzeeq/Salon-CRM-Project/models"
	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService texts customers about tomorrow's appointments via Twilio.
// Only active customers who opted in to SMS contact are messaged. Send
// failures are logged and never block anything.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// StartScheduler runs the reminder job every morning at 8 AM.
func (s *ReminderService) StartScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("0 8 * * *", s.SendAppointmentReminders); err != nil {
		log.Printf("Failed to schedule reminder job: %v", err)
		return
	}

	c.Start()
	log.Println("Appointment reminder scheduler started")
}

// SendAppointmentReminders messages every contactable customer with an
// appointment booked for tomorrow.
func (s *ReminderService) SendAppointmentReminders() {
	log.Println("Starting appointment reminder processing...")

	tomorrow := time.Now().AddDate(0, 0, 1)

	var appointments []models.Appointment
	if err := s.db.Preload("Customer").
		Where("date = ?", tomorrow.Format("2006-01-02")).
		Order("start_time ASC").
		Find(&appointments).Error; err != nil {
		log.Printf("Failed to fetch tomorrow's appointments: %v", err)
		return
	}

	for _, appointment := range appointments {
		customer := appointment.Customer
		if !customer.Active || !customer.SMSIsContactable || customer.PhoneNo == nil {
			continue
		}
		s.sendReminder(appointment, customer)
	}

	log.Println("Appointment reminder processing completed")
}

func (s *ReminderService) sendReminder(appointment models.Appointment, customer models.Customer) {
	message := fmt.Sprintf("Hi %s, a reminder of your salon appointment tomorrow at %s.",
		customer.FirstName, appointment.StartTime)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(*customer.PhoneNo)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", *customer.PhoneNo, err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", *customer.PhoneNo, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", *customer.PhoneNo)
	}
}
