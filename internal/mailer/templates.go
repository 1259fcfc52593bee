package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

var tplFuncs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
}

// approvedTemplate confirms a committed order: itemized cart, subtotal,
// free shipping line, batch total and the shipping address.
var approvedTemplate = template.Must(template.New("approved").Funcs(tplFuncs).Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1>Order Confirmed!</h1>
  <p>Thank you for shopping with TechVault</p>
  <p>Dear {{.Customer.FullName}},</p>
  <p>Your order has been successfully processed and will be shipped soon!</p>
  <h2>Items Ordered:</h2>
  {{range .Items}}
  <div style="padding: 8px 0; border-bottom: 1px solid #eee;">
    <p style="margin: 0; font-weight: bold;">{{.Name}}</p>
    <p style="margin: 4px 0;">Color: {{.Color}} | Size: {{.Size}}</p>
    <p style="margin: 4px 0;">Quantity: {{.Quantity}} &times; ${{money .UnitPrice}} = ${{money .LineTotal}}</p>
  </div>
  {{end}}
  <p><strong>Subtotal: ${{money .Subtotal}}</strong></p>
  <p>Shipping: Free</p>
  <p style="font-weight: bold;">Total: ${{money .Total}}</p>
  <h2>Shipping Address</h2>
  <p>{{.Customer.Address}}</p>
  <p>{{.Customer.City}}, {{.Customer.State}} {{.Customer.ZipCode}}</p>
  <p>We'll send you another email when your order ships.</p>
  <p>Thank you for choosing TechVault!</p>
</div>
`))

// rejectedTemplate covers both declined payments and gateway errors.
var rejectedTemplate = template.Must(template.New("rejected").Funcs(tplFuncs).Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1>{{if eq .Status "declined"}}Payment Issue{{else}}Processing Error{{end}}</h1>
  <p>Dear {{.Customer.FullName}},</p>
  <p>We encountered an issue processing your order.</p>
  {{if eq .Status "declined"}}
  <p>Your payment could not be processed. Please check your payment information and try again.</p>
  {{else}}
  <p>We experienced a technical error while processing your order. Our team has been notified and will contact you shortly.</p>
  {{end}}
  <p><strong>Total Amount:</strong> ${{money .Total}}</p>
  <p>If you have any questions, please contact our customer support.</p>
  <p>We apologize for any inconvenience.</p>
</div>
`))

// RenderOrderEmail picks the template for the record's status and returns
// the subject and HTML body.
func RenderOrderEmail(rec OrderRecord) (subject, body string, err error) {
	var buf bytes.Buffer
	if rec.Status == "approved" {
		subject = "Order Confirmation"
		err = approvedTemplate.Execute(&buf, rec)
	} else {
		if rec.Status == "declined" {
			subject = "Order Payment Issue"
		} else {
			subject = "Order Processing Error"
		}
		err = rejectedTemplate.Execute(&buf, rec)
	}
	if err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}
