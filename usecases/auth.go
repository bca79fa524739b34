package usecases

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"microfin-server/entities"
	"microfin-server/repositories"
	"microfin-server/services"
)

const bcryptCost = 10

type AuthUseCase struct {
	UserRepo repositories.UserRepository
	Tokens   *services.TokenService
}

func NewAuthUseCase(userRepo repositories.UserRepository, tokens *services.TokenService) *AuthUseCase {
	return &AuthUseCase{
		UserRepo: userRepo,
		Tokens:   tokens,
	}
}

// Signup registers a new user. The password is hashed before it ever
// reaches the repository.
func (uc *AuthUseCase) Signup(name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return ErrMissingFields
	}

	_, err := uc.UserRepo.GetByEmail(email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := uc.UserRepo.Create(user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Login verifies credentials and returns a signed token carrying the user
// id. No session state is kept; the token is the whole proof.
func (uc *AuthUseCase) Login(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrMissingFields
	}

	user, err := uc.UserRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return uc.Tokens.Issue(user.ID)
}

// GetUser fetches a user by id. The password hash never serializes.
func (uc *AuthUseCase) GetUser(id string) (*entities.User, error) {
	if id == "" {
		return nil, ErrUserNotFound
	}

	user, err := uc.UserRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}
