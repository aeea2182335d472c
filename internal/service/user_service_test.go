package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	eerrors "eventcraft/internal/errors"
	"eventcraft/internal/model"
)

func TestUserService_UpdateProfile(t *testing.T) {
	stored := func() *model.User {
		return &model.User{
			ID:    7,
			Name:  "Aaron",
			Email: "aaron@example.com",
			Phone: "+1-555-0101",
		}
	}

	t.Run("applies non-empty fields", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(stored(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		service := NewUserService(mockRepo, nil)
		user, err := service.UpdateProfile(context.Background(), 7, ProfileUpdate{Name: "Aaron A."})

		assert.NoError(t, err)
		assert.Equal(t, "Aaron A.", user.Name)
		assert.Equal(t, "aaron@example.com", user.Email)
		assert.Equal(t, "+1-555-0101", user.Phone)
	})

	t.Run("email collision", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(stored(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)

		service := NewUserService(mockRepo, nil)
		_, err := service.UpdateProfile(context.Background(), 7, ProfileUpdate{Email: "taken@example.com"})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockRepo, nil)
		_, err := service.UpdateProfile(context.Background(), 99, ProfileUpdate{Name: "Nobody"})
		assert.ErrorIs(t, err, eerrors.ErrUserNotFound)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("current123"), 10)
	stored := func() *model.User {
		return &model.User{ID: 7, Email: "aaron@example.com", PasswordHash: string(hash)}
	}

	t.Run("correct current password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(stored(), nil)
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("next456")) == nil
		})).Return(nil)

		service := NewUserService(mockRepo, nil)
		assert.NoError(t, service.ChangePassword(context.Background(), 7, "current123", "next456"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("wrong current password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(stored(), nil)

		service := NewUserService(mockRepo, nil)
		err := service.ChangePassword(context.Background(), 7, "wrong", "next456")

		assert.ErrorIs(t, err, eerrors.ErrCurrentPasswordIncorrect)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
