package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"dukatrack-backend/internal/models"
	"dukatrack-backend/internal/repository"
	"dukatrack-backend/internal/utils"
	"dukatrack-backend/store"
)

func newTestStore() store.Store {
	return store.NewMemoryStore()
}

// saleTestEnv wires the sale service and its repositories over one in-memory
// store, seeded with a shop's worth of data.
type saleTestEnv struct {
	kv       store.Store
	sales    *repository.SaleRepository
	products *repository.ProductRepository
	salesmen *repository.SalesmanRepository
	service  *SaleService
}

func newSaleTestEnv(t *testing.T, decrementStock bool) *saleTestEnv {
	t.Helper()
	kv := newTestStore()
	env := &saleTestEnv{
		kv:       kv,
		sales:    repository.NewSaleRepository(kv),
		products: repository.NewProductRepository(kv),
		salesmen: repository.NewSalesmanRepository(kv),
	}
	env.service = NewSaleService(env.sales, env.products, env.salesmen, decrementStock)
	return env
}

func (e *saleTestEnv) seedProduct(t *testing.T, id, name, sellingPrice string, quantity int) models.Product {
	t.Helper()
	now := utils.NowEAT()
	product := models.Product{
		ID:           id,
		ShopID:       "shop-1",
		Name:         name,
		BasePrice:    decimal.RequireFromString(sellingPrice),
		SellingPrice: decimal.RequireFromString(sellingPrice),
		Quantity:     quantity,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, e.products.Add(context.Background(), product))
	return product
}

func (e *saleTestEnv) seedSalesman(t *testing.T, id, name, username, password, commissionRate string) models.Salesman {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	now := utils.NowEAT()
	salesman := models.Salesman{
		ID:             id,
		ShopID:         "shop-1",
		Name:           name,
		Mobile:         "0712345678",
		Username:       username,
		PasswordHash:   string(hash),
		CommissionRate: decimal.RequireFromString(commissionRate),
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, e.salesmen.Add(context.Background(), salesman))
	return salesman
}
