package main

import (
	"log"

	"skillsync/config"
	adminController "skillsync/controllers/admin"
	assessmentController "skillsync/controllers/assessment"
	authController "skillsync/controllers/auth"
	courseController "skillsync/controllers/course"
	liveClassController "skillsync/controllers/liveclass"
	userControllers "skillsync/controllers/userControllers"
	"skillsync/database"
	adminRoutes "skillsync/routers/adminRoutes"
	assessmentRoutes "skillsync/routers/assessmentRoutes"
	authRoutes "skillsync/routers/authRoutes"
	courseRoutes "skillsync/routers/courseRoutes"
	liveClassRoutes "skillsync/routers/liveClassRoutes"
	userRoutes "skillsync/routers/userRoutes"
	"skillsync/store"
	"skillsync/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// One record store and one blob store, injected into every controller.
	// Mutations are read-modify-write with last-write-wins semantics; keeping
	// the store explicit keeps that visible at the call sites.
	recordStore := store.New(database.Database.Db)
	blobStore := store.NewBlobStore(database.Database.BlobDb)

	app := fiber.New(fiber.Config{
		BodyLimit: 256 * 1024 * 1024, // local course videos arrive as multipart uploads
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app, authController.NewController(recordStore))
	userRoutes.SetupUserRoutes(app, userControllers.NewController(recordStore))
	courseRoutes.SetupCourseRoutes(app, courseController.NewController(recordStore, blobStore))
	assessmentRoutes.SetupAssessmentRoutes(app, assessmentController.NewController(recordStore))
	liveClassRoutes.SetupLiveClassRoutes(app, liveClassController.NewController(recordStore))
	adminRoutes.SetupAdminRoutes(app, adminController.NewController(recordStore, blobStore))

	utils.StartClassScheduler(recordStore)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
