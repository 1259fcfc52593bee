package domain

import "time"

// Order is one row per cart line of a checkout submission. Variant strings
// are copied at creation time, not re-derived from the product. Subtotal is
// the line amount; Total is the full batch amount duplicated onto every row
// of the same submission. Rows are created inside an all-or-nothing batch
// and never mutated or deleted afterwards.
type Order struct {
	ID           int64     `gorm:"primaryKey" json:"id,string"`
	CustomerID   int64     `gorm:"index" json:"customer_id,string"`
	ProductID    int64     `gorm:"index" json:"product_id,string"`
	VariantColor string    `gorm:"size:32" json:"variant_color"`
	VariantSize  string    `gorm:"size:32" json:"variant_size"`
	Quantity     int       `json:"quantity"`
	Subtotal     float64   `json:"subtotal"`
	Total        float64   `json:"total"`
	CreatedAt    time.Time `json:"created_at"`

	Product  *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// TableName Specify table name
func (Order) TableName() string {
	return "orders"
}
