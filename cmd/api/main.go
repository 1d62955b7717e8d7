package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/salonkit/booking-api/internal/config"
	"github.com/salonkit/booking-api/internal/handler"
	availabilityHandler "github.com/salonkit/booking-api/internal/handler/availability"
	calendarHandler "github.com/salonkit/booking-api/internal/handler/calendar"
	"github.com/salonkit/booking-api/internal/middleware"
	"github.com/salonkit/booking-api/internal/router"
	bookingService "github.com/salonkit/booking-api/internal/service/booking"
	"github.com/salonkit/booking-api/pkg/clock"
	"github.com/salonkit/booking-api/pkg/logger"
	"github.com/salonkit/booking-api/pkg/metrics"
	"github.com/salonkit/booking-api/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
		Pretty:     cfg.Log.Pretty,
	})

	// Initialize services
	appMetrics := metrics.New("booking")
	bookingSvc := bookingService.NewService(clock.Real(), appMetrics)

	// Initialize handlers
	v := validator.New()
	h := handler.NewHandler()
	availabilityH := availabilityHandler.NewHandler(bookingSvc, v)
	calendarH := calendarHandler.NewHandler(bookingSvc, v)

	// Setup router
	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.API.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.API.AllowedOrigins
	}

	r := router.NewRouter(availabilityH, calendarH, h, router.Config{
		RateLimit:     rate.Limit(cfg.API.RateLimit),
		RateBurst:     cfg.API.RateBurst,
		Timeout:       time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		CORSConfig:    corsConfig,
		MetricsPrefix: cfg.API.MetricsPrefix,
	})
	r.Setup()

	// Create server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	// Start server
	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
