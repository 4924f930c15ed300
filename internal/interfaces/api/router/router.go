package router

import (
	"fmt"
	"net/http"

	"learnalert/internal/interfaces/api/handler"
	"learnalert/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Config holds the dependencies for the router.
type Config struct {
	DeckHandler  *handler.DeckHandler
	StudyHandler *handler.StudyHandler
	Logger       logger.Logger
}

// NewRouter creates and configures a new Echo router.
func NewRouter(cfg *Config) *echo.Echo {
	e := echo.New()

	// Middleware
	e.Use(middleware.RequestID())
	// Use custom logger that integrates with our logger interface
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogHost:      true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			cfg.Logger.Info(fmt.Sprintf("REQUEST: method=%s, uri=%s, status=%d, latency=%s, req_id=%s",
				v.Method, v.URI, v.Status, v.Latency, v.RequestID,
			))
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	api := e.Group("/api")

	// Deck/topic/card management
	api.POST("/decks", cfg.DeckHandler.CreateDeck)
	api.GET("/decks", cfg.DeckHandler.ListDecks)
	api.GET("/decks/:id", cfg.DeckHandler.GetDeck)
	api.PUT("/decks/:id", cfg.DeckHandler.UpdateDeck)
	api.DELETE("/decks/:id", cfg.DeckHandler.DeleteDeck)
	api.POST("/decks/:id/topics", cfg.DeckHandler.CreateTopic)
	api.PUT("/topics/:id", cfg.DeckHandler.UpdateTopic)
	api.DELETE("/topics/:id", cfg.DeckHandler.DeleteTopic)
	api.POST("/topics/:id/cards", cfg.DeckHandler.CreateCard)
	api.PUT("/cards/:id", cfg.DeckHandler.UpdateCard)
	api.DELETE("/cards/:id", cfg.DeckHandler.DeleteCard)
	api.POST("/cards/:id/move", cfg.DeckHandler.MoveCard)

	// Study scheduling and notifications
	api.POST("/study/schedule", cfg.StudyHandler.Schedule)
	api.POST("/study/stop", cfg.StudyHandler.Stop)
	api.GET("/study/countdown", cfg.StudyHandler.Countdown)
	api.GET("/notifications/pending", cfg.StudyHandler.Pending)
	api.POST("/notifications/permission", cfg.StudyHandler.Permission)
	api.POST("/notifications/actions", cfg.StudyHandler.Action)

	cfg.Logger.Info("Router initialized with routes.")
	return e
}
