package service

import (
	"context"

	"learning-service/internal/common"
	"learning-service/internal/models"
	"learning-service/internal/repository"
)

type UserService struct {
	Users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{Users: users}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (s *UserService) UpdateTheme(ctx context.Context, userID, theme string) error {
	if !models.ValidTheme(theme) {
		return common.ErrBadRequest
	}
	return s.Users.UpdateTheme(ctx, userID, theme)
}
