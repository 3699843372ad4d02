// Package users covers the identity-store edge: registration and profile
// maintenance. Authentication itself happens upstream.
package users

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"microblog/storage"
	"microblog/storage/models"
)

const MaxBioLength = 160

type Service struct {
	storage *storage.Manager
}

func NewService(storageManager *storage.Manager) *Service {
	return &Service{storage: storageManager}
}

// Register creates a new account. The display name splits on its last space:
// everything before it is the first name, the last word is the last name.
func (s *Service) Register(username, email, name, bio string) (*models.User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validateBio(bio); err != nil {
		return nil, err
	}

	firstName, lastName := splitName(name)
	user := models.User{
		Username:  username,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Bio:       bio,
	}
	if err := s.storage.CreateUser(&user); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: username already taken", storage.ErrConflict)
		}
		return nil, err
	}
	return &user, nil
}

// ProfileUpdate overwrites only the fields profile settings expose. Nil image
// and banner references leave the stored values untouched.
type ProfileUpdate struct {
	Bio           string
	Email         string
	ProfileImage  *string
	ProfileBanner *string
}

func (s *Service) UpdateProfile(userID uint, update ProfileUpdate) (*models.User, error) {
	user, err := s.storage.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if err := validateBio(update.Bio); err != nil {
		return nil, err
	}

	user.Bio = update.Bio
	user.Email = update.Email
	if update.ProfileImage != nil {
		user.ProfileImage = *update.ProfileImage
	}
	if update.ProfileBanner != nil {
		user.ProfileBanner = update.ProfileBanner
	}

	if err := s.storage.SaveUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) GetByUsername(username string) (*models.User, error) {
	return s.storage.GetUserByUsername(username)
}

func validateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", storage.ErrValidation)
	}
	for _, r := range username {
		if unicode.IsSpace(r) {
			return fmt.Errorf("%w: username cannot contain whitespace characters", storage.ErrValidation)
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("%w: username cannot contain special characters", storage.ErrValidation)
		}
	}
	return nil
}

func validateBio(bio string) error {
	if utf8.RuneCountInString(bio) > MaxBioLength {
		return fmt.Errorf("%w: bio exceeds %d characters", storage.ErrValidation, MaxBioLength)
	}
	return nil
}

func splitName(name string) (first, last string) {
	name = strings.TrimSpace(name)
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return name, ""
	}
	return name[:idx], name[idx+1:]
}
