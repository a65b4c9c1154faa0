package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"dukatrack-backend/internal/models"
	"dukatrack-backend/internal/repository"
	"dukatrack-backend/internal/utils"
)

var (
	// ErrSalesmanNotFound covers both unknown and inactive accounts so login
	// does not reveal which one it was.
	ErrSalesmanNotFound = errors.New("salesman not found or inactive")
	// ErrUsernameTaken is returned when the username is already used by an
	// active salesman (case-insensitive).
	ErrUsernameTaken = errors.New("username already in use")
	// ErrMobileTaken is returned when the mobile number is already used by an
	// active salesman.
	ErrMobileTaken = errors.New("mobile number already in use")
	// ErrInvalidCommissionRate is returned for rates outside 0-100.
	ErrInvalidCommissionRate = errors.New("commission rate must be between 0 and 100")
)

// SalesmanService handles salesman accounts and credential checks
type SalesmanService struct {
	salesmen *repository.SalesmanRepository
	sessions *repository.SessionRepository
}

// NewSalesmanService creates a new salesman service
func NewSalesmanService(salesmen *repository.SalesmanRepository, sessions *repository.SessionRepository) *SalesmanService {
	return &SalesmanService{salesmen: salesmen, sessions: sessions}
}

func validCommissionRate(rate decimal.Decimal) bool {
	return !rate.IsNegative() && rate.LessThanOrEqual(decimal.NewFromInt(100))
}

// CreateSalesman registers a salesman. Username and mobile uniqueness is
// checked against the currently loaded array, active accounts only, the way
// the form submission did it.
func (s *SalesmanService) CreateSalesman(ctx context.Context, creation *models.SalesmanCreation) (*models.Salesman, error) {
	if err := utils.ValidateStruct(creation); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	if !validCommissionRate(creation.CommissionRate) {
		return nil, ErrInvalidCommissionRate
	}

	existing, err := s.salesmen.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, sm := range existing {
		if !sm.IsActive {
			continue
		}
		if strings.EqualFold(sm.Username, creation.Username) {
			return nil, ErrUsernameTaken
		}
		if sm.Mobile == creation.Mobile {
			return nil, ErrMobileTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creation.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := utils.NowEAT()
	salesman := models.Salesman{
		ID:             uuid.New().String(),
		ShopID:         creation.ShopID,
		Name:           creation.Name,
		Mobile:         creation.Mobile,
		Username:       creation.Username,
		PasswordHash:   string(hash),
		CommissionRate: creation.CommissionRate,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.salesmen.Add(ctx, salesman); err != nil {
		return nil, fmt.Errorf("failed to create salesman: %w", err)
	}
	return &salesman, nil
}

// GetSalesmen returns salesmen, optionally scoped to one shop.
func (s *SalesmanService) GetSalesmen(ctx context.Context, shopID string) ([]models.Salesman, error) {
	if shopID == "" {
		return s.salesmen.Load(ctx)
	}
	return s.salesmen.FindByShop(ctx, shopID)
}

// GetSalesman returns a single salesman by id.
func (s *SalesmanService) GetSalesman(ctx context.Context, id string) (*models.Salesman, error) {
	salesman, err := s.salesmen.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSalesmanNotFound
	}
	return salesman, err
}

// ResolveSalesmanName returns the salesman's name or the "Unassigned"
// placeholder when the reference dangles.
func (s *SalesmanService) ResolveSalesmanName(ctx context.Context, id string) string {
	salesman, err := s.salesmen.GetByID(ctx, id)
	if err != nil {
		return models.UnassignedSalesmanName
	}
	return salesman.Name
}

// UpdateSalesman applies a partial update. Changing the commission rate only
// affects sales created afterwards; existing commissions stay as snapshotted.
func (s *SalesmanService) UpdateSalesman(ctx context.Context, id string, update *models.SalesmanUpdate) (*models.Salesman, error) {
	if err := utils.ValidateStruct(update); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	if update.CommissionRate != nil && !validCommissionRate(*update.CommissionRate) {
		return nil, ErrInvalidCommissionRate
	}

	salesman, err := s.GetSalesman(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Mobile != nil && *update.Mobile != salesman.Mobile {
		existing, err := s.salesmen.Load(ctx)
		if err != nil {
			return nil, err
		}
		for _, sm := range existing {
			if sm.IsActive && sm.ID != id && sm.Mobile == *update.Mobile {
				return nil, ErrMobileTaken
			}
		}
		salesman.Mobile = *update.Mobile
	}
	if update.Name != nil {
		salesman.Name = *update.Name
	}
	if update.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		salesman.PasswordHash = string(hash)
	}
	if update.CommissionRate != nil {
		salesman.CommissionRate = *update.CommissionRate
	}
	if update.IsActive != nil {
		salesman.IsActive = *update.IsActive
	}
	salesman.UpdatedAt = utils.NowEAT()

	if err := s.salesmen.Update(ctx, *salesman); err != nil {
		return nil, fmt.Errorf("failed to update salesman: %w", err)
	}
	return salesman, nil
}

// DeleteSalesman removes the salesman. Their recorded sales stay put.
func (s *SalesmanService) DeleteSalesman(ctx context.Context, id string) error {
	err := s.salesmen.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrSalesmanNotFound
	}
	return err
}

// Authenticate checks salesman credentials: case-insensitive username match
// among active accounts, then bcrypt password comparison. The two failure
// modes stay distinct so the app can show its two different messages.
func (s *SalesmanService) Authenticate(ctx context.Context, login *models.SalesmanLogin) (*models.Salesman, error) {
	if err := utils.ValidateStruct(login); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	salesman, err := s.salesmen.FindActiveByUsername(ctx, login.Username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSalesmanNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(salesman.PasswordHash), []byte(login.Password)); err != nil {
		return nil, ErrInvalidPassword
	}

	// Mirror the session object the mobile app kept in the store
	if err := s.sessions.SetCurrentSalesman(ctx, salesman); err != nil {
		return nil, fmt.Errorf("failed to record salesman session: %w", err)
	}
	return salesman, nil
}

// Logout clears the persisted salesman session object.
func (s *SalesmanService) Logout(ctx context.Context) error {
	return s.sessions.ClearCurrentSalesman(ctx)
}
