package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dukatrack-backend/internal/models"
)

func TestCreateSaleComputesTotalAndCommission(t *testing.T) {
	env := newSaleTestEnv(t, false)
	ctx := context.Background()
	env.seedProduct(t, "prod-1", "Sugar 1kg", "100", 50)
	env.seedSalesman(t, "sm-1", "Raj", "raj", "abc123", "10")

	sale, err := env.service.CreateSale(ctx, "sm-1", &models.SaleCreation{
		ProductID:    "prod-1",
		CustomerName: "Wanjiku",
		Quantity:     3,
	})
	require.NoError(t, err)

	assert.True(t, sale.TotalAmount.Equal(dec(t, "300.00")), "total: %s", sale.TotalAmount)
	assert.True(t, sale.Commission.Equal(dec(t, "30.00")), "commission: %s", sale.Commission)
	assert.Equal(t, models.SaleStatusPending, sale.Status)
	assert.Equal(t, "Sugar 1kg", sale.ProductName)
	assert.True(t, sale.UnitPrice.Equal(dec(t, "100")))
	assert.NotEmpty(t, sale.ID)

	// the sale is persisted
	stored, err := env.sales.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wanjiku", stored.CustomerName)
}

func TestCreateSaleRoundsToTwoDecimals(t *testing.T) {
	env := newSaleTestEnv(t, false)
	env.seedProduct(t, "prod-1", "Airtime", "33.33", 100)
	env.seedSalesman(t, "sm-1", "Raj", "raj", "abc123", "7.5")

	sale, err := env.service.CreateSale(context.Background(), "sm-1", &models.SaleCreation{
		ProductID:    "prod-1",
		CustomerName: "Otieno",
		Quantity:     3,
	})
	require.NoError(t, err)

	// 33.33 * 3 = 99.99; 99.99 * 7.5% = 7.49925 -> 7.50
	assert.True(t, sale.TotalAmount.Equal(dec(t, "99.99")), "total: %s", sale.TotalAmount)
	assert.True(t, sale.Commission.Equal(dec(t, "7.50")), "commission: %s", sale.Commission)
}

func TestCreateSaleValidationOrder(t *testing.T) {
	env := newSaleTestEnv(t, false)
	ctx := context.Background()
	env.seedProduct(t, "prod-1", "Sugar 1kg", "100", 5)
	env.seedSalesman(t, "sm-1", "Raj", "raj", "abc123", "10")

	cases := []struct {
		name     string
		creation models.SaleCreation
		wantErr  error
	}{
		{"missing product", models.SaleCreation{CustomerName: "A", Quantity: 1}, ErrNoProductSelected},
		{"missing customer", models.SaleCreation{ProductID: "prod-1", Quantity: 1}, ErrEmptyCustomerName},
		{"zero quantity", models.SaleCreation{ProductID: "prod-1", CustomerName: "A", Quantity: 0}, ErrInvalidQuantity},
		{"negative quantity", models.SaleCreation{ProductID: "prod-1", CustomerName: "A", Quantity: -2}, ErrInvalidQuantity},
		{"unknown product", models.SaleCreation{ProductID: "nope", CustomerName: "A", Quantity: 1}, ErrProductNotFound},
		{"exceeds stock", models.SaleCreation{ProductID: "prod-1", CustomerName: "A", Quantity: 6}, ErrStockExceeded},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.service.CreateSale(ctx, "sm-1", &tc.creation)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	// nothing was appended along the way
	sales, err := env.sales.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestCreateSaleQuantityEqualToStockIsAllowed(t *testing.T) {
	env := newSaleTestEnv(t, false)
	env.seedProduct(t, "prod-1", "Sugar 1kg", "100", 5)
	env.seedSalesman(t, "sm-1", "Raj", "raj", "abc123", "10")

	_, err := env.service.CreateSale(context.Background(), "sm-1", &models.SaleCreation{
		ProductID:    "prod-1",
		CustomerName: "A",
		Quantity:     5,
	})
	assert.NoError(t, err)
}

func TestCreateSaleRejectsNonPositivePrice(t *testing.T) {
	env := newSaleTestEnv(t, false)
	env.seedProduct(t, "prod-1", "Freebie", "0", 10)
	env.seedSalesman(t, "sm-1", "Raj", "raj", "abc123", "10")

	_, err := env.service.CreateSale(context.Background(), "sm-1", &models.SaleCreation{
		ProductID:    "prod-1",
		CustomerName: "A",
		Quantity:     1,
	})
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestCreateSaleUnknownSalesman(t *testing.T) {
	env := newSaleTestEnv(t, false)
	env.seedProduct(t, "prod-1", "Sugar 1kg", "100", 5)

	_, err := env.service.CreateSale(context.Background(), "ghost", &models.SaleCreation{
		ProductID:    "prod-1",
		CustomerName: "A",
		Quantity:     1,
	})
	assert.ErrorIs(t, err, ErrSalesmanNotFound)
}

func TestCreateSaleDecrementsStockWhenEnabled(t *testing.T) {
	env := newSaleTestEnv(t, true)
	ctx := context.Background()
	env.seedProduct(t, "prod-1", "Sugar 1kg", "100", 10)
	env.seedSalesman(t, "sm-1", "Raj", "raj", "abc123", "10")

	_, err := env.service.CreateSale(ctx, "sm-1", &models.SaleCreation{
		ProductID:    "prod-1",
		CustomerName: "A",
		Quantity:     4,
	})
	require.NoError(t, err)

	product, err := env.products.GetByID(ctx, "prod-1")
	require.NoError(t, err)
	assert.Equal(t, 6, product.Quantity)
}

func TestCreateSaleLeavesStockAloneWhenDisabled(t *testing.T) {
	env := newSaleTestEnv(t, false)
	ctx := context.Background()
	env.seedProduct(t, "prod-1", "Sugar 1kg", "100", 10)
	env.seedSalesman(t, "sm-1", "Raj", "raj", "abc123", "10")

	_, err := env.service.CreateSale(ctx, "sm-1", &models.SaleCreation{
		ProductID:    "prod-1",
		CustomerName: "A",
		Quantity:     4,
	})
	require.NoError(t, err)

	product, err := env.products.GetByID(ctx, "prod-1")
	require.NoError(t, err)
	assert.Equal(t, 10, product.Quantity)
}

func TestCommissionSnapshotSurvivesRateChange(t *testing.T) {
	env := newSaleTestEnv(t, false)
	ctx := context.Background()
	env.seedProduct(t, "prod-1", "Sugar 1kg", "100", 50)
	salesman := env.seedSalesman(t, "sm-1", "Raj", "raj", "abc123", "10")

	sale, err := env.service.CreateSale(ctx, "sm-1", &models.SaleCreation{
		ProductID:    "prod-1",
		CustomerName: "A",
		Quantity:     3,
	})
	require.NoError(t, err)

	// bump the rate after the fact
	salesman.CommissionRate = decimal.RequireFromString("50")
	require.NoError(t, env.salesmen.Update(ctx, salesman))

	reloaded, err := env.service.GetSale(ctx, sale.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Commission.Equal(dec(t, "30.00")), "commission: %s", reloaded.Commission)
}

func TestPriceSnapshotSurvivesProductDeletion(t *testing.T) {
	env := newSaleTestEnv(t, false)
	ctx := context.Background()
	env.seedProduct(t, "prod-1", "Sugar 1kg", "100", 50)
	env.seedSalesman(t, "sm-1", "Raj", "raj", "abc123", "10")

	sale, err := env.service.CreateSale(ctx, "sm-1", &models.SaleCreation{
		ProductID:    "prod-1",
		CustomerName: "A",
		Quantity:     2,
	})
	require.NoError(t, err)
	require.NoError(t, env.products.Delete(ctx, "prod-1"))

	reloaded, err := env.service.GetSale(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sugar 1kg", reloaded.ProductName)
	assert.True(t, reloaded.TotalAmount.Equal(dec(t, "200.00")))
}

func TestGetSaleResolvesUnassignedSalesman(t *testing.T) {
	env := newSaleTestEnv(t, false)
	ctx := context.Background()
	env.seedProduct(t, "prod-1", "Sugar 1kg", "100", 50)
	env.seedSalesman(t, "sm-1", "Raj", "raj", "abc123", "10")

	sale, err := env.service.CreateSale(ctx, "sm-1", &models.SaleCreation{
		ProductID:    "prod-1",
		CustomerName: "A",
		Quantity:     1,
	})
	require.NoError(t, err)
	require.NoError(t, env.salesmen.Delete(ctx, "sm-1"))

	reloaded, err := env.service.GetSale(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UnassignedSalesmanName, reloaded.SalesmanName)
}

func TestCompleteSaleTransition(t *testing.T) {
	env := newSaleTestEnv(t, false)
	ctx := context.Background()
	env.seedProduct(t, "prod-1", "Sugar 1kg", "100", 50)
	env.seedSalesman(t, "sm-1", "Raj", "raj", "abc123", "10")

	sale, err := env.service.CreateSale(ctx, "sm-1", &models.SaleCreation{
		ProductID:    "prod-1",
		CustomerName: "A",
		Quantity:     1,
	})
	require.NoError(t, err)

	completed, err := env.service.CompleteSale(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SaleStatusCompleted, completed.Status)

	// completed is terminal
	_, err = env.service.CompleteSale(ctx, sale.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = env.service.RejectSale(ctx, sale.ID, "changed my mind")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRejectSaleRequiresReason(t *testing.T) {
	env := newSaleTestEnv(t, false)
	ctx := context.Background()
	env.seedProduct(t, "prod-1", "Sugar 1kg", "100", 50)
	env.seedSalesman(t, "sm-1", "Raj", "raj", "abc123", "10")

	sale, err := env.service.CreateSale(ctx, "sm-1", &models.SaleCreation{
		ProductID:    "prod-1",
		CustomerName: "A",
		Quantity:     1,
	})
	require.NoError(t, err)

	_, err = env.service.RejectSale(ctx, sale.ID, "")
	assert.ErrorIs(t, err, ErrRejectionReasonRequired)

	rejected, err := env.service.RejectSale(ctx, sale.ID, "customer cancelled")
	require.NoError(t, err)
	assert.Equal(t, models.SaleStatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "customer cancelled", *rejected.RejectionReason)
}

func TestTransitionUnknownSale(t *testing.T) {
	env := newSaleTestEnv(t, false)

	_, err := env.service.CompleteSale(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSaleNotFound)
}
