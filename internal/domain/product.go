package domain

import "time"

// Product is a catalog item. The order flow treats products as read-only
// reference data; only seeding and admin tooling ever write this table.
type Product struct {
	ID            int64      `gorm:"primaryKey" json:"id,string"`
	Name          string     `gorm:"index" json:"name"`
	Description   string     `gorm:"size:2048" json:"description"`
	Price         float64    `json:"price"`
	OriginalPrice float64    `json:"original_price"`
	Image         string     `gorm:"size:1024" json:"image"`
	Category      string     `gorm:"size:64;index" json:"category"`
	Rating        float64    `json:"rating"`
	Reviews       int        `json:"reviews"`
	Inventory     int        `json:"inventory"`
	IsNew         bool       `json:"is_new"`
	IsBestseller  bool       `json:"is_bestseller"`
	Colors        StringList `gorm:"type:text" json:"colors"`
	Sizes         StringList `gorm:"type:text" json:"sizes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "products"
}
