package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"daylist-app/daylist/broker"
	"daylist-app/daylist/config"
	"daylist-app/daylist/database"
	"daylist-app/daylist/middleware"
	"daylist-app/daylist/repositories"
	"daylist-app/daylist/routes"
	"daylist-app/daylist/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	var db *database.Database
	if cfg.DataSource != config.DataSourceMemory {
		var err error
		db, err = database.Setup(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()
	} else {
		log.Println("Using the in-memory data source; data will not survive a restart")
	}

	repos, err := repositories.New(cfg, db)
	if err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}

	// Event publishing is best-effort: without NATS the API still works,
	// only the event stream stays silent.
	producer, err := broker.NewProducer(cfg.NATSUrl)
	if err != nil {
		log.Printf("Warning: Failed to connect NATS producer: %v", err)
		log.Println("The application will continue, but domain events will not be published")
		producer = nil
	} else {
		defer producer.Close()
	}

	var consumer *broker.Consumer
	if producer != nil {
		consumer, err = broker.NewConsumer(cfg.NATSUrl)
		if err != nil {
			log.Printf("Warning: Failed to connect NATS consumer: %v", err)
			consumer = nil
		}
	}

	authService := services.NewAuthService(repos.Users, cfg.JWTSecret, cfg.JWTExpirationHours, producer)
	userService := services.NewUserService(repos.Users)
	todoService := services.NewTodoService(repos.Todos, repos.Users, producer)

	streamService := services.NewStreamService(consumer)
	if err := streamService.Start(); err != nil {
		log.Printf("Warning: Failed to start event stream: %v", err)
	}
	defer streamService.Stop()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	routes.RegisterAuthRoutes(router, authService)
	routes.RegisterUserRoutes(router, userService, authService)
	routes.RegisterTodoRoutes(router, todoService, authService)
	routes.RegisterStreamRoutes(router, streamService, authService)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down server...")
		streamService.Stop()
		if producer != nil {
			producer.Close()
		}
		os.Exit(0)
	}()

	log.Printf("API server is running on port %s", cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
