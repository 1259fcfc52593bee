package shopapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// listProducts returns the full catalog in the shape the storefront UI
// expects: a message field plus the product array.
func (h *Handler) listProducts(c echo.Context) error {
	products, err := h.svc.ListProducts(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query products", nil)
	}
	return ok(c, echo.Map{
		"message": "success",
		"product": products,
	})
}
