package shopapi

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/techvault/storefront/internal/checkout"
	"github.com/techvault/storefront/internal/domain"
	"github.com/techvault/storefront/internal/webserver"
)

type fakeOrderService struct {
	processFunc func(ctx context.Context, cart []checkout.CartLine, input checkout.CustomerInput) (*checkout.OrderOutcome, error)
	lookupFunc  func(ctx context.Context, ids []int64) (*checkout.OrderBundle, error)
	listFunc    func(ctx context.Context) ([]domain.Product, error)
}

func (f *fakeOrderService) ProcessOrder(ctx context.Context, cart []checkout.CartLine, input checkout.CustomerInput) (*checkout.OrderOutcome, error) {
	if f.processFunc != nil {
		return f.processFunc(ctx, cart, input)
	}
	return &checkout.OrderOutcome{Status: checkout.StatusApproved, Message: "Transaction approved"}, nil
}

func (f *fakeOrderService) LookupOrders(ctx context.Context, ids []int64) (*checkout.OrderBundle, error) {
	if f.lookupFunc != nil {
		return f.lookupFunc(ctx, ids)
	}
	return &checkout.OrderBundle{}, nil
}

func (f *fakeOrderService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx)
	}
	return nil, nil
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.JSONSerializer = webserver.NewJsonSerializer()
	e.Validator = webserver.NewValidator()
	return e
}

func doRequest(t *testing.T, h echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := newTestEcho()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}
