package checkout

import (
	"context"

	"github.com/pkg/errors"
	"github.com/techvault/storefront/internal/domain"
	"github.com/techvault/storefront/internal/mailer"
	"go.uber.org/zap"
)

// Dispatcher queues a best-effort notification send. Implementations never
// block the caller on delivery and never report delivery failures back.
type Dispatcher interface {
	Dispatch(rec mailer.OrderRecord)
}

// Service is the order transaction engine: payment simulation, atomic
// order-batch persistence, best-effort notification and receipt lookup.
type Service struct {
	gateway  PaymentGateway
	products ProductRepository
	orders   OrderRepository
	notify   Dispatcher
}

func NewService(gateway PaymentGateway, products ProductRepository, orders OrderRepository, notify Dispatcher) *Service {
	return &Service{
		gateway:  gateway,
		products: products,
		orders:   orders,
		notify:   notify,
	}
}

// ProcessOrder runs one checkout submission.
//
// Validation failures (empty cart, bad quantity, missing variant, unknown
// product) return a sentinel error before the gateway is charged and before
// any persistence. A non-approved gateway outcome returns normally with
// that status and touches nothing. An approved outcome commits the customer
// upsert and one order row per cart line in a single transaction; a
// persistence error after approval surfaces as a wrapped internal error,
// distinct from a payment rejection. The notification send is dispatched
// after commit and never affects the returned outcome.
func (s *Service) ProcessOrder(ctx context.Context, cart []CartLine, input CustomerInput) (*OrderOutcome, error) {
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}
	for _, line := range cart {
		if line.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		if line.Color == "" || line.Size == "" {
			return nil, ErrMissingVariant
		}
	}

	ids := make([]int64, 0, len(cart))
	for _, line := range cart {
		ids = append(ids, line.ProductID)
	}
	products, err := s.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "resolve cart products")
	}
	for _, line := range cart {
		if _, ok := products[line.ProductID]; !ok {
			return nil, ErrUnknownProduct
		}
	}

	var subtotal float64
	for _, line := range cart {
		subtotal += products[line.ProductID].Price * float64(line.Quantity)
	}
	// No tax, no shipping charge: the batch total is the cart subtotal.
	total := subtotal

	outcome := s.gateway.Charge(total, NewInstrument(input.CardNumber))
	if outcome.Status != StatusApproved {
		zap.L().Info("checkout rejected by gateway",
			zap.String("status", outcome.Status),
			zap.String("email", input.Email),
			zap.Float64("total", total))
		return &OrderOutcome{Status: outcome.Status, Message: outcome.Message}, nil
	}

	customer := &domain.Customer{
		FullName:   input.FullName,
		Email:      input.Email,
		Phone:      input.Phone,
		Address:    input.Address,
		City:       input.City,
		State:      input.State,
		ZipCode:    input.ZipCode,
		CardNumber: input.CardNumber,
		ExpiryDate: input.ExpiryDate,
		Cvv:        input.Cvv,
	}

	orders := make([]*domain.Order, 0, len(cart))
	for _, line := range cart {
		product := products[line.ProductID]
		orders = append(orders, &domain.Order{
			ProductID:    product.ID,
			VariantColor: line.Color,
			VariantSize:  line.Size,
			Quantity:     line.Quantity,
			Subtotal:     product.Price * float64(line.Quantity),
			Total:        total,
		})
	}

	if err := s.orders.CreateBatch(ctx, customer, orders); err != nil {
		// The gateway already said yes; failing to record that is an
		// operational fault, not a payment rejection.
		return nil, errors.Wrap(err, "order persistence failed")
	}

	created := make([]CreatedOrder, 0, len(orders))
	for _, o := range orders {
		created = append(created, CreatedOrder{
			OrderID:   o.ID,
			ProductID: o.ProductID,
			Quantity:  o.Quantity,
		})
	}

	if s.notify != nil {
		s.notify.Dispatch(s.buildRecord(outcome, cart, products, input, subtotal, total))
	}

	zap.L().Info("checkout committed",
		zap.String("email", input.Email),
		zap.Int("orders", len(created)),
		zap.Float64("total", total))

	return &OrderOutcome{Status: outcome.Status, Message: outcome.Message, Orders: created}, nil
}

func (s *Service) buildRecord(outcome Outcome, cart []CartLine, products map[int64]domain.Product, input CustomerInput, subtotal, total float64) mailer.OrderRecord {
	items := make([]mailer.RecordItem, 0, len(cart))
	for _, line := range cart {
		product := products[line.ProductID]
		items = append(items, mailer.RecordItem{
			Name:      product.Name,
			Color:     line.Color,
			Size:      line.Size,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
			LineTotal: product.Price * float64(line.Quantity),
		})
	}
	return mailer.OrderRecord{
		Status:  outcome.Status,
		Message: outcome.Message,
		Customer: mailer.RecordCustomer{
			FullName: input.FullName,
			Email:    input.Email,
			Address:  input.Address,
			City:     input.City,
			State:    input.State,
			ZipCode:  input.ZipCode,
		},
		Items:    items,
		Subtotal: subtotal,
		Total:    total,
	}
}

// LookupOrders fetches and hydrates the orders matching ids. Returns
// ErrNoOrders when nothing matches; partial matches return only the
// matching rows with no partial-error signaling.
func (s *Service) LookupOrders(ctx context.Context, ids []int64) (*OrderBundle, error) {
	if len(ids) == 0 {
		return nil, ErrNoOrders
	}
	orders, err := s.orders.FindWithRefs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "receipt lookup failed")
	}
	if len(orders) == 0 {
		return nil, ErrNoOrders
	}
	matched := make([]int64, 0, len(orders))
	for _, o := range orders {
		matched = append(matched, o.ID)
	}
	return &OrderBundle{OrderIDs: matched, Items: orders}, nil
}

// ListProducts returns the full catalog.
func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}
