package main

import (
	"log"

	"bookreview/config"
	authController "bookreview/controllers/authControllers"
	bookController "bookreview/controllers/bookControllers"
	reviewController "bookreview/controllers/reviewControllers"
	userProfileController "bookreview/controllers/userControllers"
	"bookreview/database"
	"bookreview/routers/authRoutes"
	"bookreview/routers/bookRoutes"
	"bookreview/routers/reviewRoutes"
	"bookreview/routers/userRoutes"
	"bookreview/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"gorm.io/gorm"
)

// buildApp wires stores, controllers and routes onto a Fiber app around the
// given database handle. Split from main so tests can stand up the full
// HTTP surface against an in-memory database.
func buildApp(db *gorm.DB, cfg *config.Config) *fiber.App {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	aggregator := store.NewAggregator(db)
	reviewStore := store.NewReviewStore(db, aggregator)
	bookStore := store.NewBookStore(db)
	userStore := store.NewUserStore(db)

	authRoutes.SetupAuthRoutes(app, authController.NewAuthController(userStore, cfg))
	userRoutes.SetupUserRoutes(app, userProfileController.NewUserController(userStore), cfg.JWTKey)
	bookRoutes.SetupBookRoutes(app, bookController.NewBookController(bookStore, userStore), cfg.JWTKey)
	reviewRoutes.SetupReviewRoutes(app, reviewController.NewReviewController(reviewStore), cfg.JWTKey)

	return app
}

func main() {
	cfg := config.LoadConfig()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	app := buildApp(db, cfg)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
