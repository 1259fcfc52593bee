package checkout

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/techvault/storefront/internal/domain"
	"github.com/techvault/storefront/pkg/common"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "storefront_test.db")),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(domain.Tables...))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) domain.Product {
	t.Helper()
	p := domain.Product{
		ID:     common.UUIDint64(),
		Name:   name,
		Price:  price,
		Colors: domain.StringList{"red", "blue"},
		Sizes:  domain.StringList{"M", "L"},
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func testCustomer(email string) *domain.Customer {
	return &domain.Customer{
		FullName:   "Ada Lovelace",
		Email:      email,
		Phone:      "+15550100",
		Address:    "1 Analytical Way",
		City:       "London",
		State:      "LN",
		ZipCode:    "100001",
		CardNumber: "4111111111111234",
		ExpiryDate: "12/30",
		Cvv:        "123",
	}
}

func TestCreateBatchCommitsAllRows(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormOrderRepository(db)
	p1 := seedProduct(t, db, "Quantum Hoodie", 20)
	p2 := seedProduct(t, db, "Circuit Tee", 15)

	orders := []*domain.Order{
		{ProductID: p1.ID, VariantColor: "red", VariantSize: "M", Quantity: 2, Subtotal: 40, Total: 55},
		{ProductID: p2.ID, VariantColor: "blue", VariantSize: "L", Quantity: 1, Subtotal: 15, Total: 55},
	}
	cust := testCustomer("ada@example.com")
	require.NoError(t, repo.CreateBatch(context.Background(), cust, orders))

	var count int64
	db.Model(&domain.Order{}).Count(&count)
	require.EqualValues(t, 2, count)

	for _, o := range orders {
		require.NotZero(t, o.ID)
		require.Equal(t, cust.ID, o.CustomerID)
	}
}

func TestCreateBatchRollsBackOnMissingVariant(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormOrderRepository(db)
	p := seedProduct(t, db, "Quantum Hoodie", 20)

	orders := []*domain.Order{
		{ProductID: p.ID, VariantColor: "red", VariantSize: "M", Quantity: 2, Subtotal: 40, Total: 55},
		{ProductID: p.ID, VariantColor: "blue", Quantity: 1, Subtotal: 15, Total: 55}, // size missing
	}
	err := repo.CreateBatch(context.Background(), testCustomer("ada@example.com"), orders)
	require.ErrorIs(t, err, ErrMissingVariant)

	var orderCount, customerCount int64
	db.Model(&domain.Order{}).Count(&orderCount)
	db.Model(&domain.Customer{}).Count(&customerCount)
	require.Zero(t, orderCount)
	require.Zero(t, customerCount)
}

func TestCreateBatchUpsertsCustomerByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormOrderRepository(db)
	p := seedProduct(t, db, "Quantum Hoodie", 20)

	first := testCustomer("ada@example.com")
	require.NoError(t, repo.CreateBatch(context.Background(), first, []*domain.Order{
		{ProductID: p.ID, VariantColor: "red", VariantSize: "M", Quantity: 1, Subtotal: 20, Total: 20},
	}))

	second := testCustomer("ada@example.com")
	second.FullName = "Ada King"
	second.Address = "2 Difference Engine Rd"
	require.NoError(t, repo.CreateBatch(context.Background(), second, []*domain.Order{
		{ProductID: p.ID, VariantColor: "blue", VariantSize: "L", Quantity: 1, Subtotal: 20, Total: 20},
	}))

	var customers []domain.Customer
	require.NoError(t, db.Find(&customers).Error)
	require.Len(t, customers, 1)
	require.Equal(t, first.ID, customers[0].ID)
	require.Equal(t, "Ada King", customers[0].FullName)
	require.Equal(t, "2 Difference Engine Rd", customers[0].Address)

	// orders are never deduplicated
	var orderCount int64
	db.Model(&domain.Order{}).Count(&orderCount)
	require.EqualValues(t, 2, orderCount)
}

func TestFindWithRefsHydratesProductAndCustomer(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormOrderRepository(db)
	p := seedProduct(t, db, "Quantum Hoodie", 20)

	orders := []*domain.Order{
		{ProductID: p.ID, VariantColor: "red", VariantSize: "M", Quantity: 2, Subtotal: 40, Total: 40},
	}
	require.NoError(t, repo.CreateBatch(context.Background(), testCustomer("ada@example.com"), orders))

	found, err := repo.FindWithRefs(context.Background(), []int64{orders[0].ID, 424242})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.NotNil(t, found[0].Product)
	require.Equal(t, "Quantum Hoodie", found[0].Product.Name)
	require.NotNil(t, found[0].Customer)
	require.Equal(t, "ada@example.com", found[0].Customer.Email)
}

func TestGormProductRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormProductRepository(db)
	p1 := seedProduct(t, db, "Quantum Hoodie", 20)
	p2 := seedProduct(t, db, "Circuit Tee", 15)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)

	byID, err := repo.GetByIDs(context.Background(), []int64{p1.ID, p2.ID, 99})
	require.NoError(t, err)
	require.Len(t, byID, 2)
	require.Equal(t, 20.0, byID[p1.ID].Price)
	require.True(t, byID[p2.ID].Colors.Contains("red"))
}
