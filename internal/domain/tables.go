package domain

var Tables = []interface{}{
	// Catalog
	&Product{},
	// Checkout
	&Customer{},
	&Order{},
}
