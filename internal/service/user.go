package service

import (
	"errors"
	"strings"

	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/model"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/repository"
)

// ErrEmptyUsername rejects blank logins before any storage round-trip.
var ErrEmptyUsername = errors.New("username is required")

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Login fetches the user for the username or creates one on first sight.
// Calling it twice with the same name yields the same record. Usernames are
// case-sensitive: "Alice" and "alice" are different users.
func (s *userService) Login(username string) (*model.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrEmptyUsername
	}

	user, err := s.userRepo.FindByUsername(username)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	user = &model.User{Username: username}
	if err := s.userRepo.Create(user); err != nil {
		// Lost a race with a concurrent login for the same name: the unique
		// index rejected the insert, so the row exists now.
		if existing, ferr := s.userRepo.FindByUsername(username); ferr == nil {
			return existing, nil
		}
		return nil, err
	}

	return user, nil
}

func (s *userService) ListUsers() ([]model.User, error) {
	return s.userRepo.FindAll()
}

func (s *userService) PremiumStatus(username string) (bool, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return false, err
	}
	return user.IsPremium, nil
}
