package shopapi

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/techvault/storefront/internal/checkout"
	"github.com/techvault/storefront/internal/domain"
	"github.com/techvault/storefront/internal/webserver"
)

// OrderService is what the HTTP layer needs from the transaction engine.
type OrderService interface {
	ProcessOrder(ctx context.Context, cart []checkout.CartLine, input checkout.CustomerInput) (*checkout.OrderOutcome, error)
	LookupOrders(ctx context.Context, ids []int64) (*checkout.OrderBundle, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// Handler serves the storefront endpoints.
type Handler struct {
	svc OrderService
}

func NewHandler(svc OrderService) *Handler {
	return &Handler{svc: svc}
}

// Register binds the storefront routes on the global web server.
func Register(svc OrderService) {
	h := NewHandler(svc)
	webserver.ApiGET("/products", h.listProducts)
	webserver.ApiPOST("/checkout", h.processCheckout)
	webserver.ApiPOST("/receipt", h.lookupReceipt)
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(200, data)
}

type errorBody struct {
	Error  string      `json:"error"`
	Code   string      `json:"code,omitempty"`
	Detail interface{} `json:"detail,omitempty"`
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	return c.JSON(status, errorBody{Error: message, Code: code, Detail: detail})
}
