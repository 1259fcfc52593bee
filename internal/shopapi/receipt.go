package shopapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/techvault/storefront/internal/checkout"
	"github.com/techvault/storefront/internal/domain"
	"github.com/techvault/storefront/pkg/common"
	"go.uber.org/zap"
)

// The client stores the order identifiers it received at checkout time as
// an opaque serialized blob and submits that blob verbatim.
type receiptRequest struct {
	OrderID string `json:"orderId"`
}

type receiptRef struct {
	OrderID string `json:"orderId"`
}

type receiptCustomer struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
	CardMasked string `json:"card_masked"`
}

type receiptItem struct {
	OrderID      int64            `json:"orderId,string"`
	ProductID    int64            `json:"productId,string"`
	VariantColor string           `json:"variant_color"`
	VariantSize  string           `json:"variant_size"`
	Quantity     int              `json:"quantity"`
	Subtotal     float64          `json:"subtotal"`
	Total        float64          `json:"total"`
	CreatedAt    time.Time        `json:"created_at"`
	Product      *domain.Product  `json:"product,omitempty"`
	Customer     *receiptCustomer `json:"customer,omitempty"`
}

// lookupReceipt rehydrates order, product and customer data for the
// thank-you page. Anyone holding order identifiers can call this; raw
// payment fields are never exposed, only a masked card number.
func (h *Handler) lookupReceipt(c echo.Context) error {
	var req receiptRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse receipt request", nil)
	}
	if req.OrderID == "" {
		return fail(c, http.StatusBadRequest, "MISSING_ORDER_ID", "orderId is required", nil)
	}

	var refs []receiptRef
	if err := jsoniter.UnmarshalFromString(req.OrderID, &refs); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ORDER_ID", "Invalid orderId format", nil)
	}

	ids := make([]int64, 0, len(refs))
	for _, ref := range refs {
		id, err := strconv.ParseInt(ref.OrderID, 10, 64)
		if err != nil {
			return fail(c, http.StatusBadRequest, "INVALID_ORDER_ID", "Invalid orderId format", nil)
		}
		ids = append(ids, id)
	}

	bundle, err := h.svc.LookupOrders(c.Request().Context(), ids)
	if errors.Is(err, checkout.ErrNoOrders) {
		return fail(c, http.StatusNotFound, "ORDER_NOT_FOUND", "No matching orders found", nil)
	}
	if err != nil {
		zap.L().Error("receipt lookup error", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "RECEIPT_LOOKUP_FAILED", "Failed to fetch order", nil)
	}

	orderIds := make([]string, 0, len(bundle.OrderIDs))
	for _, id := range bundle.OrderIDs {
		orderIds = append(orderIds, strconv.FormatInt(id, 10))
	}
	items := make([]receiptItem, 0, len(bundle.Items))
	for _, o := range bundle.Items {
		item := receiptItem{
			OrderID:      o.ID,
			ProductID:    o.ProductID,
			VariantColor: o.VariantColor,
			VariantSize:  o.VariantSize,
			Quantity:     o.Quantity,
			Subtotal:     o.Subtotal,
			Total:        o.Total,
			CreatedAt:    o.CreatedAt,
			Product:      o.Product,
		}
		if o.Customer != nil {
			item.Customer = &receiptCustomer{
				FullName:   o.Customer.FullName,
				Email:      o.Customer.Email,
				Phone:      o.Customer.Phone,
				Address:    o.Customer.Address,
				City:       o.Customer.City,
				State:      o.Customer.State,
				ZipCode:    o.Customer.ZipCode,
				CardMasked: common.MaskCardNumber(o.Customer.CardNumber),
			}
		}
		items = append(items, item)
	}

	return ok(c, echo.Map{
		"orderIds": orderIds,
		"items":    items,
	})
}
