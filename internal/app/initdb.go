package app

import (
	"time"

	"github.com/techvault/storefront/internal/domain"
	"github.com/techvault/storefront/pkg/common"
	"go.uber.org/zap"
)

// defaultProducts is the TechVault demo catalog seeded on first start.
var defaultProducts = []domain.Product{
	{
		Name:          "Quantum Hoodie",
		Description:   "Heavyweight fleece hoodie with reflective TechVault print.",
		Price:         59.99,
		OriginalPrice: 79.99,
		Image:         "/images/quantum-hoodie.jpg",
		Category:      "Apparel",
		Rating:        4.8,
		Reviews:       231,
		Inventory:     120,
		IsBestseller:  true,
		Colors:        domain.StringList{"black", "purple", "gray"},
		Sizes:         domain.StringList{"S", "M", "L", "XL"},
	},
	{
		Name:          "Circuit Tee",
		Description:   "Soft cotton tee with a printed circuit-board motif.",
		Price:         24.5,
		OriginalPrice: 29.99,
		Image:         "/images/circuit-tee.jpg",
		Category:      "Apparel",
		Rating:        4.6,
		Reviews:       502,
		Inventory:     340,
		IsBestseller:  true,
		Colors:        domain.StringList{"white", "black", "navy"},
		Sizes:         domain.StringList{"XS", "S", "M", "L", "XL"},
	},
	{
		Name:          "Neon Runner Sneakers",
		Description:   "Lightweight mesh sneakers with neon accent soles.",
		Price:         89.0,
		OriginalPrice: 110.0,
		Image:         "/images/neon-runner.jpg",
		Category:      "Footwear",
		Rating:        4.4,
		Reviews:       128,
		Inventory:     75,
		IsNew:         true,
		Colors:        domain.StringList{"green", "orange"},
		Sizes:         domain.StringList{"40", "41", "42", "43", "44"},
	},
	{
		Name:          "Vault Cap",
		Description:   "Adjustable snapback cap with embroidered vault logo.",
		Price:         19.95,
		OriginalPrice: 19.95,
		Image:         "/images/vault-cap.jpg",
		Category:      "Accessories",
		Rating:        4.2,
		Reviews:       89,
		Inventory:     200,
		Colors:        domain.StringList{"black", "red", "blue"},
		Sizes:         domain.StringList{"one-size"},
	},
	{
		Name:          "Cyber Windbreaker",
		Description:   "Packable windbreaker with sealed seams and hidden hood.",
		Price:         74.25,
		OriginalPrice: 95.0,
		Image:         "/images/cyber-windbreaker.jpg",
		Category:      "Apparel",
		Rating:        4.7,
		Reviews:       64,
		Inventory:     58,
		IsNew:         true,
		Colors:        domain.StringList{"silver", "black"},
		Sizes:         domain.StringList{"S", "M", "L"},
	},
	{
		Name:          "Data Socks 3-Pack",
		Description:   "Crew socks woven with a binary stripe pattern, pack of three.",
		Price:         15.0,
		OriginalPrice: 18.0,
		Image:         "/images/data-socks.jpg",
		Category:      "Accessories",
		Rating:        4.9,
		Reviews:       412,
		Inventory:     500,
		IsBestseller:  true,
		Colors:        domain.StringList{"white", "black"},
		Sizes:         domain.StringList{"M", "L"},
	},
}

// checkProducts seeds the demo catalog when a product is missing.
func (a *Application) checkProducts() {
	for _, p := range defaultProducts {
		var count int64
		a.gormDB.Model(&domain.Product{}).Where("name = ?", p.Name).Count(&count)
		if count == 0 {
			p.ID = common.UUIDint64()
			p.CreatedAt = time.Now()
			p.UpdatedAt = time.Now()
			if err := a.gormDB.Create(&p).Error; err != nil {
				zap.L().Error("failed to create default product", zap.String("name", p.Name), zap.Error(err))
			} else {
				zap.L().Info("initialized default product", zap.String("name", p.Name))
			}
		}
	}
}
