package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/techvault/storefront/internal/domain"
	"github.com/techvault/storefront/pkg/common"
	"gorm.io/gorm"
)

// ProductRepository provides read-only catalog access.
type ProductRepository interface {
	// List returns the full product catalog.
	List(ctx context.Context) ([]domain.Product, error)

	// GetByIDs returns the products for the given IDs keyed by ID.
	// Missing IDs are simply absent from the map.
	GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.Product, error)
}

// OrderRepository persists checkout batches and serves receipt lookups.
type OrderRepository interface {
	// CreateBatch upserts the customer by email and creates every order row
	// in one transaction. Either all rows commit or none do. A row missing
	// its variant color or size aborts the batch with ErrMissingVariant.
	CreateBatch(ctx context.Context, customer *domain.Customer, orders []*domain.Order) error

	// FindWithRefs fetches the orders matching ids together with their
	// product and customer records in one read.
	FindWithRefs(ctx context.Context, ids []int64) ([]domain.Order, error)
}

// GormProductRepository is the GORM implementation of ProductRepository.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *GormProductRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.Product, error) {
	var products []domain.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	result := make(map[int64]domain.Product, len(products))
	for _, p := range products {
		result[p.ID] = p
	}
	return result, nil
}

// GormOrderRepository is the GORM implementation of OrderRepository.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) CreateBatch(ctx context.Context, customer *domain.Customer, orders []*domain.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The only hard invariant the persistence step enforces: every row
		// carries both variant strings, or the whole batch rolls back.
		for _, o := range orders {
			if o.VariantColor == "" || o.VariantSize == "" {
				return ErrMissingVariant
			}
		}

		now := time.Now()
		var existing domain.Customer
		err := tx.Where("email = ?", customer.Email).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if customer.ID == 0 {
				customer.ID = common.UUIDint64()
			}
			customer.CreatedAt = now
			customer.UpdatedAt = now
			if err := tx.Create(customer).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			// Existing customer: overwrite contact and payment fields with
			// the latest submission, keep the row identity.
			customer.ID = existing.ID
			if err := tx.Model(&domain.Customer{}).Where("id = ?", existing.ID).Updates(map[string]interface{}{
				"full_name":   customer.FullName,
				"phone":       customer.Phone,
				"address":     customer.Address,
				"city":        customer.City,
				"state":       customer.State,
				"zip_code":    customer.ZipCode,
				"card_number": customer.CardNumber,
				"expiry_date": customer.ExpiryDate,
				"cvv":         customer.Cvv,
				"updated_at":  now,
			}).Error; err != nil {
				return err
			}
		}

		for _, o := range orders {
			if o.ID == 0 {
				o.ID = common.UUIDint64()
			}
			o.CustomerID = customer.ID
			o.CreatedAt = now
			if err := tx.Create(o).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormOrderRepository) FindWithRefs(ctx context.Context, ids []int64) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Customer").
		Where("id IN ?", ids).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}
