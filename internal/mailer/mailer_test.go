package mailer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord(status string) OrderRecord {
	return OrderRecord{
		Status: status,
		Customer: RecordCustomer{
			FullName: "Ada Lovelace",
			Email:    "ada@example.com",
			Address:  "1 Analytical Way",
			City:     "London",
			State:    "LN",
			ZipCode:  "100001",
		},
		Items: []RecordItem{
			{Name: "Quantum Hoodie", Color: "red", Size: "M", Quantity: 2, UnitPrice: 20, LineTotal: 40},
			{Name: "Circuit Tee", Color: "blue", Size: "L", Quantity: 1, UnitPrice: 15, LineTotal: 15},
		},
		Subtotal: 55,
		Total:    55,
	}
}

func TestRenderApprovedEmail(t *testing.T) {
	subject, body, err := RenderOrderEmail(sampleRecord("approved"))
	require.NoError(t, err)
	assert.Equal(t, "Order Confirmation", subject)

	assert.Contains(t, body, "Dear Ada Lovelace")
	assert.Contains(t, body, "Quantum Hoodie")
	assert.Contains(t, body, "Color: red | Size: M")
	assert.Contains(t, body, "$20.00")
	assert.Contains(t, body, "$40.00")
	assert.Contains(t, body, "Subtotal: $55.00")
	assert.Contains(t, body, "Shipping: Free")
	assert.Contains(t, body, "Total: $55.00")
	assert.Contains(t, body, "1 Analytical Way")
	assert.Contains(t, body, "London, LN 100001")
}

func TestRenderRejectedEmails(t *testing.T) {
	subject, body, err := RenderOrderEmail(sampleRecord("declined"))
	require.NoError(t, err)
	assert.Equal(t, "Order Payment Issue", subject)
	assert.Contains(t, body, "Your payment could not be processed")
	assert.Contains(t, body, "$55.00")
	assert.NotContains(t, body, "Shipping Address")

	subject, body, err = RenderOrderEmail(sampleRecord("error"))
	require.NoError(t, err)
	assert.Equal(t, "Order Processing Error", subject)
	assert.Contains(t, body, "technical error")
}

type fakeSender struct {
	to      string
	subject string
	body    string
	err     error
	sent    chan struct{}
}

func (f *fakeSender) Send(to, subject, htmlBody string) error {
	f.to = to
	f.subject = subject
	f.body = htmlBody
	if f.sent != nil {
		defer close(f.sent)
	}
	return f.err
}

func TestNotifierSendsToCustomer(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender)

	require.NoError(t, n.Notify(sampleRecord("approved")))
	assert.Equal(t, "ada@example.com", sender.to)
	assert.Equal(t, "Order Confirmation", sender.subject)
	assert.Contains(t, sender.body, "Quantum Hoodie")
}

func TestNotifierPropagatesSendError(t *testing.T) {
	sender := &fakeSender{err: errors.New("relay down")}
	n := NewNotifier(sender)
	assert.Error(t, n.Notify(sampleRecord("approved")))
}

func TestDispatcherSwallowsSendFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("relay down"), sent: make(chan struct{})}
	d, err := NewDispatcher(NewNotifier(sender), 2)
	require.NoError(t, err)
	defer d.Release()

	// Dispatch must not surface the failure to the caller.
	d.Dispatch(sampleRecord("approved"))

	select {
	case <-sender.sent:
	case <-time.After(2 * time.Second):
		t.Fatal("send attempt never ran")
	}
}
