package services

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Avadhut20/roxiler/entity"
	"github.com/Avadhut20/roxiler/repository"
)

// UserService covers the admin-side user management. Roles are set at
// creation and never change; there is no role-update operation.
type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{userRepo: repo}
}

// CreateWithRole creates a user with any of the three roles. Admin-only
// at the route level.
func (s *UserService) CreateWithRole(name, email, password, address, role string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	role = strings.ToUpper(strings.TrimSpace(role))
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrInvalidInput)
	}
	if !entity.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hashed),
		Address:  strings.TrimSpace(address),
		Role:     role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// List returns users matching the filter, ordered by name.
func (s *UserService) List(filter repository.UserFilter) ([]entity.User, error) {
	if filter.Role != "" {
		filter.Role = strings.ToUpper(filter.Role)
	}
	return s.userRepo.List(filter)
}
