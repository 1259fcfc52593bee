package shopapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/techvault/storefront/internal/checkout"
	"go.uber.org/zap"
)

type productRefPayload struct {
	ID int64 `json:"id,string"`
}

type variantPayload struct {
	Color string `json:"color"`
	Size  string `json:"size"`
}

type cartLinePayload struct {
	Product          productRefPayload `json:"product" validate:"required"`
	SelectedVariants variantPayload    `json:"selectedVariants"`
	Quantity         int               `json:"quantity" validate:"required,min=1"`
}

type customerPayload struct {
	FullName   string `json:"fullName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	ZipCode    string `json:"zipCode" validate:"required"`
	CardNumber string `json:"cardNumber" validate:"required"`
	ExpiryDate string `json:"expiryDate" validate:"required"`
	Cvv        string `json:"cvv" validate:"required"`
}

type checkoutRequest struct {
	Cart     []cartLinePayload `json:"cart" validate:"required,min=1,dive"`
	Customer customerPayload   `json:"customer" validate:"required"`
}

// processCheckout runs one checkout submission.
//
// Response contract for the client state machine: gateway outcomes
// (approved, declined, error) come back as 200 with the outcome status;
// validation failures are 400; an internal failure after an approved
// charge is a 500 so the client renders it as a request failure, never as
// a payment decline.
func (h *Handler) processCheckout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse checkout request", nil)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Checkout request failed validation", err.Error())
	}

	cart := make([]checkout.CartLine, 0, len(req.Cart))
	for _, line := range req.Cart {
		cart = append(cart, checkout.CartLine{
			ProductID: line.Product.ID,
			Color:     line.SelectedVariants.Color,
			Size:      line.SelectedVariants.Size,
			Quantity:  line.Quantity,
		})
	}
	input := checkout.CustomerInput{
		FullName:   req.Customer.FullName,
		Email:      req.Customer.Email,
		Phone:      req.Customer.Phone,
		Address:    req.Customer.Address,
		City:       req.Customer.City,
		State:      req.Customer.State,
		ZipCode:    req.Customer.ZipCode,
		CardNumber: req.Customer.CardNumber,
		ExpiryDate: req.Customer.ExpiryDate,
		Cvv:        req.Customer.Cvv,
	}

	outcome, err := h.svc.ProcessOrder(c.Request().Context(), cart, input)
	if err != nil {
		if checkout.IsValidationError(err) {
			return fail(c, http.StatusBadRequest, "INVALID_CART", err.Error(), nil)
		}
		zap.L().Error("order processing error", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "ORDER_PROCESSING_FAILED", "Failed to process order", nil)
	}
	return ok(c, outcome)
}
