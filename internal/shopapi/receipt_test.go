package shopapi

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techvault/storefront/internal/checkout"
	"github.com/techvault/storefront/internal/domain"
)

func sampleBundle() *checkout.OrderBundle {
	return &checkout.OrderBundle{
		OrderIDs: []int64{9001},
		Items: []domain.Order{
			{
				ID:           9001,
				CustomerID:   77,
				ProductID:    101,
				VariantColor: "red",
				VariantSize:  "M",
				Quantity:     2,
				Subtotal:     40,
				Total:        55,
				CreatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
				Product:      &domain.Product{ID: 101, Name: "Quantum Hoodie", Price: 20},
				Customer: &domain.Customer{
					ID:         77,
					FullName:   "Ada Lovelace",
					Email:      "ada@example.com",
					Address:    "1 Analytical Way",
					City:       "London",
					State:      "LN",
					ZipCode:    "100001",
					CardNumber: "4111111111111234",
					ExpiryDate: "12/30",
					Cvv:        "123",
				},
			},
		},
	}
}

func TestReceiptLookup(t *testing.T) {
	var gotIDs []int64
	svc := &fakeOrderService{
		lookupFunc: func(ctx context.Context, ids []int64) (*checkout.OrderBundle, error) {
			gotIDs = ids
			return sampleBundle(), nil
		},
	}
	body := `{"orderId": "[{\"orderId\":\"9001\"},{\"orderId\":\"9002\"}]"}`
	rec := doRequest(t, NewHandler(svc).lookupReceipt, http.MethodPost, "/receipt", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int64{9001, 9002}, gotIDs)

	payload := rec.Body.String()
	assert.Contains(t, payload, `"orderIds":["9001"]`)
	assert.Contains(t, payload, "Quantum Hoodie")
	assert.Contains(t, payload, "ada@example.com")
	// payment fields never leave the system unmasked
	assert.Contains(t, payload, "************1234")
	assert.NotContains(t, payload, "4111111111111234")
	assert.NotContains(t, payload, `"cvv"`)
	assert.NotContains(t, payload, "12/30")
}

func TestReceiptNotFound(t *testing.T) {
	svc := &fakeOrderService{
		lookupFunc: func(ctx context.Context, ids []int64) (*checkout.OrderBundle, error) {
			return nil, checkout.ErrNoOrders
		},
	}
	body := `{"orderId": "[{\"orderId\":\"404404\"}]"}`
	rec := doRequest(t, NewHandler(svc).lookupReceipt, http.MethodPost, "/receipt", body)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No matching orders found")
}

func TestReceiptBadRequests(t *testing.T) {
	h := NewHandler(&fakeOrderService{})

	rec := doRequest(t, h.lookupReceipt, http.MethodPost, "/receipt", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "orderId is required")

	rec = doRequest(t, h.lookupReceipt, http.MethodPost, "/receipt", `{"orderId": "not json"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid orderId format")

	rec = doRequest(t, h.lookupReceipt, http.MethodPost, "/receipt", `{"orderId": "[{\"orderId\":\"abc\"}]"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
