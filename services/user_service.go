package services

import (
	"daylist-app/daylist/models"
	"daylist-app/daylist/repositories"

	"github.com/google/uuid"
)

type UserServiceInterface interface {
	GetUserByID(id uuid.UUID) (*models.User, error)
}

// UserService exposes profile lookups for the authenticated user.
type UserService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetUserByID(id uuid.UUID) (*models.User, error) {
	return s.users.GetUserByID(id)
}
