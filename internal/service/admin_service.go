package service

import (
	"context"

	eerrors "eventcraft/internal/errors"
	"eventcraft/internal/model"
	"eventcraft/internal/repository"
)

// AdminStats aggregates system-wide counts.
type AdminStats struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalEvents  int64 `json:"totalEvents"`
	TotalTickets int64 `json:"totalTickets"`
}

// AdminService exposes admin reporting and user management.
type AdminService interface {
	Stats(ctx context.Context) (*AdminStats, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	ListEvents(ctx context.Context) ([]model.Event, error)
	DeleteUsersByEmail(ctx context.Context, emails []string) (int64, error)
}

type adminService struct {
	userRepo    repository.UserRepository
	eventRepo   repository.EventRepository
	bookingRepo repository.BookingRepository
}

// NewAdminService creates a new admin service.
func NewAdminService(userRepo repository.UserRepository, eventRepo repository.EventRepository, bookingRepo repository.BookingRepository) AdminService {
	return &adminService{
		userRepo:    userRepo,
		eventRepo:   eventRepo,
		bookingRepo: bookingRepo,
	}
}

func (s *adminService) Stats(ctx context.Context) (*AdminStats, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	tickets, err := s.bookingRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &AdminStats{TotalUsers: users, TotalEvents: events, TotalTickets: tickets}, nil
}

func (s *adminService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

func (s *adminService) ListEvents(ctx context.Context) ([]model.Event, error) {
	return s.eventRepo.List(ctx)
}

// DeleteUsersByEmail removes the listed users. Deleted users' events and
// bookings are intentionally left in place.
func (s *adminService) DeleteUsersByEmail(ctx context.Context, emails []string) (int64, error) {
	deleted, err := s.userRepo.DeleteByEmails(ctx, emails)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, eerrors.ErrNoUsersMatched
	}
	return deleted, nil
}
