package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"tourbook/internal/config"
	"tourbook/internal/core/controller"
	"tourbook/internal/core/repository"
	"tourbook/internal/core/service"
	"tourbook/internal/infrastructure/db"
	"tourbook/internal/infrastructure/db/adapter"
	"tourbook/internal/infrastructure/metrics"
	"tourbook/pkg/logger"
	"tourbook/pkg/responder"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: couldn't load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	dbConn, err := db.NewPostgresDB(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer dbConn.Close()

	if err := db.RunMigrations(dbConn, cfg.MigrationsDir, zlog); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}

	sqlAdapter := adapter.NewSQLAdapter(dbConn)

	tourRepo := repository.NewTourRepository(sqlAdapter, zlog)
	userRepo := repository.NewUserRepository(sqlAdapter, zlog)
	bookingRepo := repository.NewBookingRepository(sqlAdapter, zlog)

	tourService := service.NewTourService(tourRepo, zlog)
	userService := service.NewUserService(userRepo, zlog)
	bookingService := service.NewBookingService(bookingRepo, zlog)

	jsonResponder := responder.NewJSONResponder()
	auth := NewAuth(cfg.JWTSecret, userService, jsonResponder, zlog)

	tourController := controller.NewTourController(tourService, jsonResponder)
	userController := controller.NewUserController(userService, jsonResponder)
	bookingController := controller.NewBookingController(bookingService, jsonResponder)

	r := setupRouter(auth, tourController, userController, bookingController)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		zlog.Info("server starting", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("could not start server", zap.Error(err))
		}
	}()

	<-done
	zlog.Info("server is shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zlog.Error("server shutdown failed", zap.Error(err))
	}

	zlog.Info("server stopped gracefully")
}

func setupRouter(
	auth *Auth,
	tours *controller.TourController,
	users *controller.UserController,
	bookings *controller.BookingController,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(metrics.HTTPMetricsMiddleware)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.Handler())

	// Auth routes
	r.Group(func(r chi.Router) {
		r.Post("/api/register", auth.RegisterHandler)
		r.Post("/api/login", auth.LoginHandler)
	})

	// Tour routes
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware)
		r.Get("/api/tours", tours.ListTours)
		r.Post("/api/tours", tours.CreateTour)
		r.Get("/api/tours/search", tours.SearchTours)
		r.Get("/api/tours/{id}", tours.GetTour)
		r.Put("/api/tours/{id}", tours.UpdateTour)
		r.Delete("/api/tours/{id}", tours.DeleteTour)
	})

	// User routes
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware)
		r.Get("/api/users", users.ListUsers)
		r.Post("/api/users", users.CreateUser)
		r.Get("/api/users/search", users.SearchUsers)
		r.Get("/api/users/exists", users.EmailExists)
		r.Get("/api/users/{id}", users.GetUser)
		r.Put("/api/users/{id}", users.UpdateUser)
		r.Delete("/api/users/{id}", users.DeleteUser)
	})

	// Booking routes
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware)
		r.Get("/api/bookings", bookings.ListBookings)
		r.Post("/api/bookings", bookings.CreateBooking)
		r.Get("/api/bookings/{id}", bookings.GetBooking)
		r.Put("/api/bookings/{id}", bookings.UpdateBooking)
		r.Delete("/api/bookings/{id}", bookings.DeleteBooking)
	})

	return r
}
