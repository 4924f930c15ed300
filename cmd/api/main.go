package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	// Application Layer
	appService "learnalert/internal/application/service"

	// Infrastructure Layer
	"learnalert/internal/infrastructure/assets"
	"learnalert/internal/infrastructure/countdown"
	"learnalert/internal/infrastructure/database/sqlite"
	"learnalert/internal/infrastructure/notification"
	"learnalert/internal/infrastructure/render"
	"learnalert/internal/infrastructure/scheduler"

	// Interfaces Layer
	"learnalert/internal/interfaces/api/handler"
	"learnalert/internal/interfaces/api/router"

	// Packages
	appLogger "learnalert/internal/pkg/logger"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file
)

func gracefulShutdown(apiServer *http.Server, sched *scheduler.Scheduler, heartbeat *countdown.Countdown, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	log.Println("Shutting down gracefully, press Ctrl+C again to force")

	// Stop the countdown heartbeat and the scheduler first
	log.Println("Stopping countdown and scheduler...")
	heartbeat.Stop()
	sched.Stop()
	log.Println("Scheduler stopped.")

	// Close database connection
	log.Println("Closing database connection...")
	if err := sqlite.CloseDB(); err != nil {
		log.Printf("Error closing database: %v", err)
	} else {
		log.Println("Database connection closed.")
	}

	// Shutdown HTTP server
	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown with error: %v", err)
	}

	log.Println("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}

func main() {
	// --- Initialization ---
	appLog := appLogger.New()
	appLog.Info("Logger initialized.")

	// Load Environment Variables (using autoload)
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080" // Default port
		appLog.Warn("PORT environment variable not set, defaulting to 8080")
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		appLog.Error("Invalid PORT environment variable", err)
		os.Exit(1)
	}

	// --- Infrastructure ---
	db := sqlite.NewDB()
	deckRepo := sqlite.NewDeckRepository(db)
	topicRepo := sqlite.NewTopicRepository(db)
	cardRepo := sqlite.NewCardRepository(db)
	appLog.Info("Database and repositories initialized.")

	cronScheduler := scheduler.NewScheduler(appLog)
	dispatcher := notification.NewDispatcher(cronScheduler, appLog)
	renderer := render.NewCardRenderer()
	assetStore, err := assets.NewStore(os.Getenv("LEARNALERT_ASSET_DIR"), appLog)
	if err != nil {
		appLog.Error("Failed to initialize asset store", err)
		os.Exit(1)
	}
	heartbeat := countdown.New(appLog)

	// Delivery is a log line in this process; the pending set and trigger
	// bookkeeping are what the engine depends on.
	dispatcher.SetDeliveryHandler(func(n notification.Notification) {
		if n.ImagePath != "" {
			appLog.Info(fmt.Sprintf("📣 %s: %s (attachment: %s)", n.Title, n.Body, n.ImagePath))
		} else {
			appLog.Info(fmt.Sprintf("📣 %s: %s", n.Title, n.Body))
		}
	})

	// --- Application Services ---
	deckSvc := appService.NewDeckService(deckRepo, topicRepo, cardRepo, appLog)
	studySvc := appService.NewStudyService(deckRepo, dispatcher, renderer, assetStore, heartbeat, appLog)
	appLog.Info("Application services initialized.")

	// --- User-action consumer ---
	actionCtx, cancelActions := context.WithCancel(context.Background())
	defer cancelActions()
	go studySvc.ListenActions(actionCtx)
	appLog.Info("User-action consumer started.")

	// --- API Handlers ---
	deckHandler := handler.NewDeckHandler(deckSvc, appLog)
	studyHandler := handler.NewStudyHandler(studySvc, dispatcher, appLog)
	appLog.Info("API handlers initialized.")

	// --- Router ---
	routerCfg := &router.Config{
		DeckHandler:  deckHandler,
		StudyHandler: studyHandler,
		Logger:       appLog,
	}
	echoRouter := router.NewRouter(routerCfg)

	// --- HTTP Server ---
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      echoRouter,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// --- Start Server & Shutdown Handling ---
	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, cronScheduler, heartbeat, done)

	appLog.Info(fmt.Sprintf("Server starting on port %d", port))
	err = apiServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		appLog.Error("HTTP server ListenAndServe error", err)
		panic(fmt.Sprintf("http server error: %s", err))
	}

	// Wait for graceful shutdown signal
	<-done
	appLog.Info("Graceful shutdown complete.")
}
