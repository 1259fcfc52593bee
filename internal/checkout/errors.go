package checkout

import "errors"

var (
	// ErrEmptyCart rejects a checkout submission with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrMissingVariant rejects a cart line without both color and size.
	ErrMissingVariant = errors.New("cart line missing variant color/size")

	// ErrInvalidQuantity rejects a cart line with quantity < 1.
	ErrInvalidQuantity = errors.New("cart line quantity must be at least 1")

	// ErrUnknownProduct rejects a cart line referencing a product that is
	// not in the catalog.
	ErrUnknownProduct = errors.New("unknown product in cart")

	// ErrNoOrders signals a receipt lookup that matched nothing. Distinct
	// from transport or parse failures at the HTTP layer.
	ErrNoOrders = errors.New("no matching orders found")
)

// IsValidationError reports whether err is a client-correctable rejection
// raised before any persistence, as opposed to an internal fault.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyCart) ||
		errors.Is(err, ErrMissingVariant) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrUnknownProduct)
}
