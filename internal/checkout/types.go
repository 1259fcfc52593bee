package checkout

import "github.com/techvault/storefront/internal/domain"

// Payment outcome states returned by the gateway and echoed to clients.
const (
	StatusApproved = "approved"
	StatusDeclined = "declined"
	StatusError    = "error"
)

// CartLine is one product plus its required variant selection awaiting
// checkout. Both Color and Size must be set; a line missing either aborts
// the whole batch.
type CartLine struct {
	ProductID int64
	Color     string
	Size      string
	Quantity  int
}

// CustomerInput carries the checkout form fields as submitted.
type CustomerInput struct {
	FullName   string
	Email      string
	Phone      string
	Address    string
	City       string
	State      string
	ZipCode    string
	CardNumber string
	ExpiryDate string
	Cvv        string
}

// CreatedOrder identifies one committed order row of an approved checkout.
type CreatedOrder struct {
	OrderID   int64 `json:"orderId,string"`
	ProductID int64 `json:"productId,string"`
	Quantity  int   `json:"quantity"`
}

// OrderOutcome is the result of a checkout submission. Orders is populated
// only for approved outcomes.
type OrderOutcome struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Orders  []CreatedOrder `json:"orders,omitempty"`
}

// OrderBundle is the hydrated result of a receipt lookup: the set of
// matched identifiers plus the order rows with product and customer refs.
type OrderBundle struct {
	OrderIDs []int64
	Items    []domain.Order
}
