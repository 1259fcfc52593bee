package mailer

// RecordItem is one rendered cart line of a checkout notification.
type RecordItem struct {
	Name      string
	Color     string
	Size      string
	Quantity  int
	UnitPrice float64
	LineTotal float64
}

// RecordCustomer carries the contact fields rendered into the templates.
type RecordCustomer struct {
	FullName string
	Email    string
	Address  string
	City     string
	State    string
	ZipCode  string
}

// OrderRecord is a snapshot of a finished checkout used to render the
// confirmation or decline email. It is built by the caller after the
// payment simulation so the mailer never touches the database.
type OrderRecord struct {
	Status   string
	Message  string
	Customer RecordCustomer
	Items    []RecordItem
	Subtotal float64
	Total    float64
}
