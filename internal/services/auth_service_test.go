package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dukatrack-backend/internal/models"
)

func TestOwnerTokenRoundTrip(t *testing.T) {
	service := NewAuthService("test-secret", 3600)

	token, err := service.GenerateOwnerToken(&models.Owner{ID: "owner-1"})
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", claims.SubjectID)
	assert.Equal(t, models.RoleOwner, claims.Role)
	assert.Empty(t, claims.ShopID)
}

func TestSalesmanTokenCarriesShopScope(t *testing.T) {
	service := NewAuthService("test-secret", 3600)

	token, err := service.GenerateSalesmanToken(&models.Salesman{ID: "sm-1", ShopID: "shop-1"})
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "sm-1", claims.SubjectID)
	assert.Equal(t, models.RoleSalesman, claims.Role)
	assert.Equal(t, "shop-1", claims.ShopID)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewAuthService("secret-a", 3600)
	verifier := NewAuthService("secret-b", 3600)

	token, err := issuer.GenerateOwnerToken(&models.Owner{ID: "owner-1"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	service := NewAuthService("test-secret", -60)

	token, err := service.GenerateOwnerToken(&models.Owner{ID: "owner-1"})
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestBlacklistedTokenRejected(t *testing.T) {
	service := NewAuthService("test-secret", 3600)

	token, err := service.GenerateOwnerToken(&models.Owner{ID: "owner-1"})
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	require.NoError(t, err)

	service.BlacklistToken(token)
	assert.True(t, service.IsTokenBlacklisted(token))

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}
