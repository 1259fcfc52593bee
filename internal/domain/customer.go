package domain

import "time"

// Customer is keyed by unique email. Every approved checkout upserts this
// record with the latest submitted contact and payment fields.
// Payment fields are stored as provided but never serialized to API
// responses; the receipt layer exposes a masked card number only.
type Customer struct {
	ID         int64     `gorm:"primaryKey" json:"id,string"`
	FullName   string    `json:"full_name"`
	Email      string    `gorm:"uniqueIndex;size:255" json:"email"`
	Phone      string    `gorm:"size:32" json:"phone"`
	Address    string    `json:"address"`
	City       string    `gorm:"size:64" json:"city"`
	State      string    `gorm:"size:64" json:"state"`
	ZipCode    string    `gorm:"size:16" json:"zip_code"`
	CardNumber string    `gorm:"size:32" json:"-"`
	ExpiryDate string    `gorm:"size:8" json:"-"`
	Cvv        string    `gorm:"size:8" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Customer) TableName() string {
	return "customers"
}
