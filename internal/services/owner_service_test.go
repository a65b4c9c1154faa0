package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dukatrack-backend/internal/models"
	"dukatrack-backend/internal/repository"
)

func newOwnerService() *OwnerService {
	return NewOwnerService(repository.NewSessionRepository(newTestStore()))
}

func TestOwnerRegisterAndLogin(t *testing.T) {
	service := newOwnerService()
	ctx := context.Background()

	owner, err := service.Register(ctx, &models.OwnerRegistration{
		Name:     "Mary Wairimu",
		Mobile:   "0712345678",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", owner.PasswordHash)

	authed, err := service.Authenticate(ctx, &models.OwnerLogin{Mobile: "0712345678", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, authed.ID)
}

func TestOwnerRegisterOnlyOnce(t *testing.T) {
	service := newOwnerService()
	ctx := context.Background()

	_, err := service.Register(ctx, &models.OwnerRegistration{Name: "Mary Wairimu", Mobile: "0712345678", Password: "secret1"})
	require.NoError(t, err)

	_, err = service.Register(ctx, &models.OwnerRegistration{Name: "Someone Else", Mobile: "0798765432", Password: "secret2"})
	assert.ErrorIs(t, err, ErrOwnerExists)
}

func TestOwnerLoginFailures(t *testing.T) {
	service := newOwnerService()
	ctx := context.Background()

	_, err := service.Authenticate(ctx, &models.OwnerLogin{Mobile: "0712345678", Password: "secret1"})
	assert.ErrorIs(t, err, ErrOwnerNotFound)

	_, err = service.Register(ctx, &models.OwnerRegistration{Name: "Mary Wairimu", Mobile: "0712345678", Password: "secret1"})
	require.NoError(t, err)

	_, err = service.Authenticate(ctx, &models.OwnerLogin{Mobile: "0700000000", Password: "secret1"})
	assert.ErrorIs(t, err, ErrOwnerNotFound)

	_, err = service.Authenticate(ctx, &models.OwnerLogin{Mobile: "0712345678", Password: "wrong-1"})
	assert.ErrorIs(t, err, ErrInvalidPassword)
}
