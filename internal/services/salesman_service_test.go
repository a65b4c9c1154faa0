package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dukatrack-backend/internal/models"
	"dukatrack-backend/internal/repository"
	"dukatrack-backend/store"
)

func newSalesmanService(t *testing.T) (*SalesmanService, store.Store) {
	t.Helper()
	kv := newTestStore()
	salesmen := repository.NewSalesmanRepository(kv)
	sessions := repository.NewSessionRepository(kv)
	return NewSalesmanService(salesmen, sessions), kv
}

func validCreation(username, mobile string) *models.SalesmanCreation {
	return &models.SalesmanCreation{
		ShopID:         "shop-1",
		Name:           "Raj Kumar",
		Mobile:         mobile,
		Username:       username,
		Password:       "abc123",
		CommissionRate: decimal.RequireFromString("10"),
	}
}

func TestCreateSalesmanHashesPassword(t *testing.T) {
	service, _ := newSalesmanService(t)

	salesman, err := service.CreateSalesman(context.Background(), validCreation("raj", "0712345678"))
	require.NoError(t, err)

	assert.NotEmpty(t, salesman.PasswordHash)
	assert.NotEqual(t, "abc123", salesman.PasswordHash)
	assert.True(t, salesman.IsActive)
}

func TestCreateSalesmanRejectsDuplicateUsernameCaseInsensitive(t *testing.T) {
	service, _ := newSalesmanService(t)
	ctx := context.Background()

	_, err := service.CreateSalesman(ctx, validCreation("raj", "0712345678"))
	require.NoError(t, err)

	_, err = service.CreateSalesman(ctx, validCreation("RAJ", "0798765432"))
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestCreateSalesmanRejectsDuplicateMobile(t *testing.T) {
	service, _ := newSalesmanService(t)
	ctx := context.Background()

	_, err := service.CreateSalesman(ctx, validCreation("raj", "0712345678"))
	require.NoError(t, err)

	_, err = service.CreateSalesman(ctx, validCreation("amina", "0712345678"))
	assert.ErrorIs(t, err, ErrMobileTaken)
}

func TestCreateSalesmanAllowsReusingInactiveAccountsUsername(t *testing.T) {
	service, _ := newSalesmanService(t)
	ctx := context.Background()

	first, err := service.CreateSalesman(ctx, validCreation("raj", "0712345678"))
	require.NoError(t, err)

	inactive := false
	_, err = service.UpdateSalesman(ctx, first.ID, &models.SalesmanUpdate{IsActive: &inactive})
	require.NoError(t, err)

	_, err = service.CreateSalesman(ctx, validCreation("raj", "0798765432"))
	assert.NoError(t, err)
}

func TestCreateSalesmanCommissionRateBounds(t *testing.T) {
	service, _ := newSalesmanService(t)
	ctx := context.Background()

	over := validCreation("raj", "0712345678")
	over.CommissionRate = decimal.RequireFromString("100.5")
	_, err := service.CreateSalesman(ctx, over)
	assert.ErrorIs(t, err, ErrInvalidCommissionRate)

	negative := validCreation("raj", "0712345678")
	negative.CommissionRate = decimal.RequireFromString("-1")
	_, err = service.CreateSalesman(ctx, negative)
	assert.ErrorIs(t, err, ErrInvalidCommissionRate)

	boundary := validCreation("raj", "0712345678")
	boundary.CommissionRate = decimal.RequireFromString("100")
	_, err = service.CreateSalesman(ctx, boundary)
	assert.NoError(t, err)
}

func TestAuthenticateCaseInsensitiveUsername(t *testing.T) {
	service, _ := newSalesmanService(t)
	ctx := context.Background()

	created, err := service.CreateSalesman(ctx, validCreation("Raj", "0712345678"))
	require.NoError(t, err)

	salesman, err := service.Authenticate(ctx, &models.SalesmanLogin{Username: "RAJ", Password: "abc123"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, salesman.ID)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	service, _ := newSalesmanService(t)
	ctx := context.Background()

	_, err := service.CreateSalesman(ctx, validCreation("raj", "0712345678"))
	require.NoError(t, err)

	_, err = service.Authenticate(ctx, &models.SalesmanLogin{Username: "raj", Password: "wrong1"})
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestAuthenticateUnknownUsername(t *testing.T) {
	service, _ := newSalesmanService(t)

	_, err := service.Authenticate(context.Background(), &models.SalesmanLogin{Username: "ghost1", Password: "abc123"})
	assert.ErrorIs(t, err, ErrSalesmanNotFound)
}

func TestAuthenticateInactiveAccountLooksUnknown(t *testing.T) {
	service, _ := newSalesmanService(t)
	ctx := context.Background()

	created, err := service.CreateSalesman(ctx, validCreation("raj", "0712345678"))
	require.NoError(t, err)

	inactive := false
	_, err = service.UpdateSalesman(ctx, created.ID, &models.SalesmanUpdate{IsActive: &inactive})
	require.NoError(t, err)

	// correct password, but the account reads as not found, not as bad password
	_, err = service.Authenticate(ctx, &models.SalesmanLogin{Username: "raj", Password: "abc123"})
	assert.ErrorIs(t, err, ErrSalesmanNotFound)
}

func TestAuthenticateRecordsSession(t *testing.T) {
	kv := newTestStore()
	salesmen := repository.NewSalesmanRepository(kv)
	sessions := repository.NewSessionRepository(kv)
	service := NewSalesmanService(salesmen, sessions)
	ctx := context.Background()

	_, err := service.CreateSalesman(ctx, validCreation("raj", "0712345678"))
	require.NoError(t, err)

	_, err = service.Authenticate(ctx, &models.SalesmanLogin{Username: "raj", Password: "abc123"})
	require.NoError(t, err)

	_, err = kv.Get(ctx, store.KeyCurrentSalesman)
	assert.NoError(t, err, "current salesman session should be persisted")

	require.NoError(t, service.Logout(ctx))
	_, err = kv.Get(ctx, store.KeyCurrentSalesman)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestUpdateSalesmanPasswordChangesHash(t *testing.T) {
	service, _ := newSalesmanService(t)
	ctx := context.Background()

	created, err := service.CreateSalesman(ctx, validCreation("raj", "0712345678"))
	require.NoError(t, err)

	newPassword := "better-secret"
	_, err = service.UpdateSalesman(ctx, created.ID, &models.SalesmanUpdate{Password: &newPassword})
	require.NoError(t, err)

	_, err = service.Authenticate(ctx, &models.SalesmanLogin{Username: "raj", Password: "abc123"})
	assert.ErrorIs(t, err, ErrInvalidPassword)

	_, err = service.Authenticate(ctx, &models.SalesmanLogin{Username: "raj", Password: newPassword})
	assert.NoError(t, err)
}

func TestResolveSalesmanNameFallsBack(t *testing.T) {
	service, _ := newSalesmanService(t)
	ctx := context.Background()

	assert.Equal(t, models.UnassignedSalesmanName, service.ResolveSalesmanName(ctx, "missing"))

	created, err := service.CreateSalesman(ctx, validCreation("raj", "0712345678"))
	require.NoError(t, err)
	assert.Equal(t, "Raj Kumar", service.ResolveSalesmanName(ctx, created.ID))
}

func TestDeleteSalesmanUnknown(t *testing.T) {
	service, _ := newSalesmanService(t)

	err := service.DeleteSalesman(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSalesmanNotFound)
}
