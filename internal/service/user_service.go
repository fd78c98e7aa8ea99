package service

import (
	"context"
	"noteblog/internal/models"
	"noteblog/internal/repository"
)

type UpdateProfileRequest struct {
	UserID    string
	FirstName string
	LastName  string
	Bio       string
	Avatar    string
}

type UserService interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

func (s *userService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*models.User, error) {
	// get user by id
	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	user.LastName = req.LastName
	user.Bio = req.Bio
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}

	// update user
	err = s.userRepo.UpdateProfile(ctx, user)
	if err != nil {
		return nil, err
	}

	return user, nil
}
