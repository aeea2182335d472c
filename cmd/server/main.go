package main

import (
	"context"
	"log"
	"net/http"

	_ "eventcraft/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"eventcraft/internal/auth"
	"eventcraft/internal/cache"
	"eventcraft/internal/config"
	"eventcraft/internal/db"
	"eventcraft/internal/handler"
	"eventcraft/internal/mail"
	"eventcraft/internal/model"
	"eventcraft/internal/repository"
	"eventcraft/internal/router"
	"eventcraft/internal/service"
)

// @title EventCraft API
// @version 1.0
// @description Event management API with role-based auth, RSVP, ticketing and admin reporting.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.SetupJoinTable(&model.Event{}, "Attendees", &model.EventAttendee{}); err != nil {
		log.Fatalf("join table setup: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Event{},
		&model.Vendor{},
		&model.Booking{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)
	bookingRepo := repository.NewBookingRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cacheClient)
	eventService := service.NewEventService(eventRepo, cacheClient)
	bookingService := service.NewBookingService(bookingRepo, eventRepo)
	adminService := service.NewAdminService(userRepo, eventRepo, bookingRepo)

	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	reminderService := service.NewReminderService(eventRepo, mailer, cfg.ReminderInterval)
	reminderService.Start(context.Background())

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	eventHandler := handler.NewEventHandler(eventService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	ticketHandler := handler.NewTicketHandler(bookingService)
	adminHandler := handler.NewAdminHandler(adminService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		eventHandler,
		bookingHandler,
		ticketHandler,
		adminHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
