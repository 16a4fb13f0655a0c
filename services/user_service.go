package services

import (
	"context"
	"net/http"

	"github.com/mdhaziqomar/memories/models"
	"github.com/mdhaziqomar/memories/repositories"
)

type UserService interface {
	List(ctx context.Context) ([]repositories.UserListRow, error)
	ListActive(ctx context.Context) ([]models.User, error)
	ToggleStatus(ctx context.Context, adminID uint, targetID uint) error
}

type userService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) List(ctx context.Context) ([]repositories.UserListRow, error) {
	rows, err := s.users.ListAll(ctx, nil)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "list users failed", err)
	}
	return rows, nil
}

func (s *userService) ListActive(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListActive(ctx, nil)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "list active users failed", err)
	}
	return users, nil
}

func (s *userService) ToggleStatus(ctx context.Context, adminID uint, targetID uint) error {
	if adminID == targetID {
		return newAppError(http.StatusBadRequest, "cannot deactivate your own account", nil)
	}

	toggled, err := s.users.ToggleActive(ctx, nil, targetID)
	if err != nil {
		return newAppError(http.StatusInternalServerError, "update user status failed", err)
	}
	if !toggled {
		return newAppError(http.StatusNotFound, "user not found", nil)
	}
	return nil
}
