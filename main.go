package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Kremzeeq/Salon-CRM-Project/config"
	"github.com/Kremzeeq/Salon-CRM-Project/models"
	"github.com/Kremzeeq/Salon-CRM-Project/routes"
	"github.com/Kremzeeq/Salon-CRM-Project/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Customer{},
		&models.Service{},
		&models.Appointment{},
	)
}

func main() {
	reminderService := services.NewReminderService(config.DB)
	reminderService.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
