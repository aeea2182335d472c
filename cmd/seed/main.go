package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"eventcraft/internal/config"
	"eventcraft/internal/db"
	"eventcraft/internal/model"
	"eventcraft/internal/repository"
)

// seedUser pairs a user record with its plaintext password for logging.
type seedUser struct {
	user     model.User
	password string
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.SetupJoinTable(&model.Event{}, "Attendees", &model.EventAttendee{}); err != nil {
		log.Fatalf("Failed to set up join table: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.User{}, &model.Event{}, &model.Vendor{}, &model.Booking{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)
	ctx := context.Background()

	users := []seedUser{
		{user: model.User{Name: "Admin", Email: "admin@eventcraft.local", Role: model.RoleAdmin}, password: "admin123"},
		{user: model.User{Name: "Olivia Organizer", Email: "olivia@eventcraft.local", Role: model.RoleOrganizer, Phone: "+1-555-0101"}, password: "organizer123"},
		{user: model.User{Name: "Aaron Attendee", Email: "aaron@eventcraft.local", Role: model.RoleAttendee}, password: "attendee123"},
		{user: model.User{Name: "Bella Attendee", Email: "bella@eventcraft.local", Role: model.RoleAttendee}, password: "attendee123"},
	}

	created := 0
	var organizer *model.User
	for i := range users {
		u, err := ensureUser(ctx, userRepo, users[i])
		if err != nil {
			log.Fatalf("Failed to seed user %s: %v", users[i].user.Email, err)
		}
		if u.Role == model.RoleOrganizer && organizer == nil {
			organizer = u
		}
		created++
	}
	log.Printf("Seeded %d users", created)

	events := []model.Event{
		{
			Title:       "Go Meetup: Concurrency Patterns",
			Description: "An evening of talks on channels, worker pools and context.",
			Date:        time.Now().AddDate(0, 0, 14).Truncate(time.Hour),
			Category:    "tech",
			Venue:       model.Venue{Name: "Downtown Hub", Address: "12 Main St", Capacity: 120},
			Vendors: []model.Vendor{
				{Name: "Beanline", Service: "catering", Contact: "beanline@example.com"},
			},
		},
		{
			Title:       "Summer Jazz Night",
			Description: "Open-air jazz with three local bands.",
			Date:        time.Now().AddDate(0, 1, 0).Truncate(time.Hour),
			Category:    "music",
			Venue:       model.Venue{Name: "Riverside Park", Address: "Riverside Dr", Capacity: 500},
		},
	}

	for i := range events {
		events[i].OrganizerID = organizer.ID
		if err := eventRepo.Create(ctx, &events[i]); err != nil {
			log.Fatalf("Failed to seed event %q: %v", events[i].Title, err)
		}
	}
	log.Printf("Seeded %d events for organizer %s", len(events), organizer.Email)

	log.Println("Seed completed successfully!")
	for _, su := range users {
		log.Printf("  - %s / %s (%s)", su.user.Email, su.password, su.user.Role)
	}
}

// ensureUser creates the user if absent, otherwise returns the stored row.
func ensureUser(ctx context.Context, repo repository.UserRepository, su seedUser) (*model.User, error) {
	existing, err := repo.FindByEmail(ctx, su.user.Email)
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("error checking user %s: %w", su.user.Email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}
	su.user.PasswordHash = string(hash)
	if err := repo.Create(ctx, &su.user); err != nil {
		return nil, fmt.Errorf("error creating user %s: %w", su.user.Email, err)
	}
	return &su.user, nil
}
