package checkout

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Instrument is an opaque payment-instrument token passed to the gateway.
// The raw card fields never cross this interface.
type Instrument struct {
	Token string
	Last4 string
}

// NewInstrument builds an opaque instrument from submitted card fields.
func NewInstrument(cardNumber string) Instrument {
	digits := strings.ReplaceAll(cardNumber, " ", "")
	last4 := digits
	if len(digits) > 4 {
		last4 = digits[len(digits)-4:]
	}
	return Instrument{Token: "tok_" + last4, Last4: last4}
}

// Outcome is the tri-state result of a charge attempt.
type Outcome struct {
	Status  string
	Message string
}

// PaymentGateway charges an instrument for an amount. The production
// implementation simulates a gateway; a real integration replaces it
// behind the same contract.
type PaymentGateway interface {
	Charge(amount float64, instrument Instrument) Outcome
}

// RandomGateway simulates a payment gateway with fixed outcome thresholds:
// [0, 0.7) approved, [0.7, 0.9) declined, [0.9, 1.0) error.
type RandomGateway struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomGateway() *RandomGateway {
	return &RandomGateway{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (g *RandomGateway) Charge(amount float64, instrument Instrument) Outcome {
	g.mu.Lock()
	v := g.rnd.Float64()
	g.mu.Unlock()
	return outcomeFor(v)
}

func outcomeFor(v float64) Outcome {
	switch {
	case v < 0.7:
		return Outcome{Status: StatusApproved, Message: "Transaction approved"}
	case v < 0.9:
		return Outcome{Status: StatusDeclined, Message: "Payment declined"}
	default:
		return Outcome{Status: StatusError, Message: "Gateway error"}
	}
}

// StaticGateway always returns a fixed outcome. Used for deterministic
// injection in tests.
type StaticGateway struct {
	Outcome Outcome
}

func (g *StaticGateway) Charge(amount float64, instrument Instrument) Outcome {
	return g.Outcome
}
