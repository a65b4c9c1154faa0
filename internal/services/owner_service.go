package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"dukatrack-backend/internal/models"
	"dukatrack-backend/internal/repository"
	"dukatrack-backend/internal/utils"
)

var (
	// ErrOwnerExists is returned when registration is attempted twice.
	ErrOwnerExists = errors.New("owner account already exists")
	// ErrOwnerNotFound is returned when no owner account is registered.
	ErrOwnerNotFound = errors.New("owner account not found")
	// ErrInvalidPassword is returned when the password does not match.
	ErrInvalidPassword = errors.New("invalid password")
)

// OwnerService handles the single shop-owner account stored under the
// "user" key.
type OwnerService struct {
	sessions *repository.SessionRepository
}

// NewOwnerService creates a new owner service
func NewOwnerService(sessions *repository.SessionRepository) *OwnerService {
	return &OwnerService{sessions: sessions}
}

// Register creates the owner account. Only one owner exists per installation.
func (s *OwnerService) Register(ctx context.Context, registration *models.OwnerRegistration) (*models.Owner, error) {
	if err := utils.ValidateStruct(registration); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	if _, err := s.sessions.GetOwner(ctx); err == nil {
		return nil, ErrOwnerExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(registration.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := utils.NowEAT()
	owner := &models.Owner{
		ID:           uuid.New().String(),
		Name:         registration.Name,
		Mobile:       registration.Mobile,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.sessions.SaveOwner(ctx, owner); err != nil {
		return nil, fmt.Errorf("failed to save owner: %w", err)
	}
	return owner, nil
}

// Authenticate checks the owner's mobile and password.
func (s *OwnerService) Authenticate(ctx context.Context, login *models.OwnerLogin) (*models.Owner, error) {
	if err := utils.ValidateStruct(login); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	owner, err := s.sessions.GetOwner(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrOwnerNotFound
	}
	if err != nil {
		return nil, err
	}

	if owner.Mobile != login.Mobile {
		return nil, ErrOwnerNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(login.Password)); err != nil {
		return nil, ErrInvalidPassword
	}
	return owner, nil
}
