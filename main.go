package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"todoapi/internal/config"
	"todoapi/internal/database"
	"todoapi/internal/handlers"
	"todoapi/internal/repositories"
	"todoapi/internal/services"
	"todoapi/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Database ---
	// Any storage error here is fatal: the listener must not start on a broken store.
	db, err := database.Open(database.DSN(cfg.DatabasePath, false), cfg.LogSQL)
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", cfg.DatabasePath, err)
	}
	defer database.Close(db)

	if err := database.Initialize(db); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	log.Printf("Database ready at %s", cfg.DatabasePath)

	// --- Optional RabbitMQ publisher for user events ---
	var publisher services.Publisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:        cfg.RabbitMQURL,
			Exchange:   services.UserEventsExchange,
			Queue:      "user_events",
			BindingKey: "user.#",
		})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient
	} else {
		log.Println("RABBITMQ_URL not set, user events will not be published")
	}

	app, err := newApp(db, cfg, publisher)
	if err != nil {
		log.Fatalf("Failed to build app: %v", err)
	}

	// --- Start HTTP Server ---
	addr := cfg.Addr()
	log.Printf("Starting server on http://%s", addr)
	for _, endpoint := range handlers.Endpoints {
		log.Printf("  %s", endpoint)
	}
	log.Println("Press Ctrl+C to stop the server")

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// newApp wires repositories, services and handlers on top of db.
func newApp(db *gorm.DB, cfg *config.Config, publisher services.Publisher) (*fiber.App, error) {
	location, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	userRepo := repositories.NewGORMUserRepository(db)
	todoRepo := repositories.NewGORMTodoRepository(db)
	statsRepo := repositories.NewGORMStatsRepository(db)

	return handlers.NewApp(handlers.Dependencies{
		Users:     services.NewUserService(userRepo, todoRepo, publisher),
		Todos:     services.NewTodoService(todoRepo, statsRepo),
		Counter:   services.NewVisitCounter(),
		Author:    cfg.Author,
		Location:  location,
		AccessLog: os.Stdout,
	}), nil
}
