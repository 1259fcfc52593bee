package cart

import (
	"github.com/techvault/storefront/internal/checkout"
	"github.com/techvault/storefront/internal/domain"
)

// Quantity bounds enforced on cart mutation, matching the storefront UI.
const (
	MinQuantity = 1
	MaxQuantity = 10
)

// Line is one product + variant selection with a price snapshot taken when
// the line was added.
type Line struct {
	ProductID int64   `json:"product_id,string"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Color     string  `json:"color"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
}

// Cart is an immutable cart value. Mutating operations return a new Cart
// and never modify the receiver.
type Cart struct {
	lines []Line
}

// New returns a cart with the given lines.
func New(lines ...Line) Cart {
	return Cart{lines: append([]Line(nil), lines...)}
}

func clampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

// Add merges the line into the cart. A line with the same product and
// variant selection increases the existing quantity instead of appending;
// quantities are clamped to [MinQuantity, MaxQuantity].
func (c Cart) Add(product domain.Product, color, size string, quantity int) Cart {
	quantity = clampQuantity(quantity)
	next := append([]Line(nil), c.lines...)
	for i, line := range next {
		if line.ProductID == product.ID && line.Color == color && line.Size == size {
			next[i].Quantity = clampQuantity(line.Quantity + quantity)
			return Cart{lines: next}
		}
	}
	next = append(next, Line{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Color:     color,
		Size:      size,
		Quantity:  quantity,
	})
	return Cart{lines: next}
}

// UpdateQuantity sets the quantity of the line at index. A quantity of
// zero or less removes the line. Out-of-range indexes are ignored.
func (c Cart) UpdateQuantity(index, quantity int) Cart {
	if index < 0 || index >= len(c.lines) {
		return c
	}
	if quantity <= 0 {
		return c.Remove(index)
	}
	next := append([]Line(nil), c.lines...)
	next[index].Quantity = clampQuantity(quantity)
	return Cart{lines: next}
}

// Remove drops the line at index. Out-of-range indexes are ignored.
func (c Cart) Remove(index int) Cart {
	if index < 0 || index >= len(c.lines) {
		return c
	}
	next := make([]Line, 0, len(c.lines)-1)
	next = append(next, c.lines[:index]...)
	next = append(next, c.lines[index+1:]...)
	return Cart{lines: next}
}

// Clear returns an empty cart.
func (c Cart) Clear() Cart {
	return Cart{}
}

// Len returns the number of distinct lines.
func (c Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Items returns a copy of the cart lines.
func (c Cart) Items() []Line {
	return append([]Line(nil), c.lines...)
}

// Subtotal sums price x quantity over all lines.
func (c Cart) Subtotal() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// TotalItems sums the quantities of all lines.
func (c Cart) TotalItems() int {
	var n int
	for _, line := range c.lines {
		n += line.Quantity
	}
	return n
}

// Lines converts the cart into checkout cart lines.
func (c Cart) Lines() []checkout.CartLine {
	lines := make([]checkout.CartLine, 0, len(c.lines))
	for _, line := range c.lines {
		lines = append(lines, checkout.CartLine{
			ProductID: line.ProductID,
			Color:     line.Color,
			Size:      line.Size,
			Quantity:  line.Quantity,
		})
	}
	return lines
}
