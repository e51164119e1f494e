package service

import (
	"context"
	"errors"
	"fmt"

	"inventory_api/internal/model"
	"inventory_api/internal/repository"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrNotYourAccount = errors.New("account does not belong to caller")
)

// UserService provides account profile operations
type UserService interface {
	UpdateUser(ctx context.Context, callerID, targetID int, name, username string) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// UpdateUser changes the name and username of an account. Only the account
// owner may update it.
func (s *userService) UpdateUser(ctx context.Context, callerID, targetID int, name, username string) (*model.User, error) {
	if callerID != targetID {
		return nil, ErrNotYourAccount
	}

	user, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for update: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.Name = name
	user.Username = username

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to update user in repo: %w", err)
	}
	return user, nil
}
