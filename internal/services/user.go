package services

import (
	"vendlink/internal/apperr"
	"vendlink/internal/models"
	"vendlink/internal/repository"
)

// UserService covers the public profile lookup and the admin-only user
// management operations.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Get(id uint) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, apperr.NotFound("user with id %d does not exist", id)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(current *models.User) ([]models.User, error) {
	if !current.Admin {
		return nil, apperr.Forbidden("not authorized to perform requested action")
	}
	return s.users.List()
}

func (s *UserService) UpdateFlags(current *models.User, id uint, approved, admin bool) (*models.User, error) {
	if !current.Admin {
		return nil, apperr.Forbidden("not authorized to perform requested action")
	}
	user, err := s.users.UpdateFlags(id, approved, admin)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, apperr.NotFound("user with id %d does not exist", id)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(current *models.User, id uint) error {
	if !current.Admin {
		return apperr.Forbidden("not authorized to perform requested action")
	}
	if err := s.users.Delete(id); err != nil {
		if err == repository.ErrNotFound {
			return apperr.NotFound("user with id %d does not exist", id)
		}
		return err
	}
	return nil
}
