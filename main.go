package main

import (
	"log"
	"wst/config"
	"wst/database"
	adminRoutes "wst/routers/adminRoutes"
	authRoutes "wst/routers/authRoutes"
	contentRoutes "wst/routers/contentRoutes"
	supervisorRoutes "wst/routers/supervisorRoutes"
	trainingRoutes "wst/routers/trainingRoutes"
	workerRoutes "wst/routers/workerRoutes"
	"wst/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded files
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	trainingRoutes.SetupTrainingRoutes(app)
	workerRoutes.SetupWorkerRoutes(app)
	supervisorRoutes.SetupSupervisorRoutes(app)
	contentRoutes.SetupContentRoutes(app)

	// Daily certificate-expiry reminder sweep
	utils.StartCertificateScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
