package mailer

import (
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

// Dispatcher runs notification sends on a bounded worker pool so a slow
// SMTP relay never blocks a checkout response. Send failures are logged
// and never propagated to the caller; a committed order is final whether
// or not its email went out.
type Dispatcher struct {
	notifier *Notifier
	pool     *ants.Pool
}

func NewDispatcher(notifier *Notifier, workers int) (*Dispatcher, error) {
	if workers <= 0 {
		workers = 4
	}
	pool, err := ants.NewPool(workers, ants.WithNonblocking(true))
	if err != nil {
		return nil, err
	}
	return &Dispatcher{notifier: notifier, pool: pool}, nil
}

// Dispatch queues exactly one send attempt for the record. If the pool is
// saturated the attempt is dropped and logged; there is no retry.
func (d *Dispatcher) Dispatch(rec OrderRecord) {
	email := rec.Customer.Email
	err := d.pool.Submit(func() {
		if err := d.notifier.Notify(rec); err != nil {
			zap.L().Error("order notification failed",
				zap.String("email", email),
				zap.String("status", rec.Status),
				zap.Error(err))
			return
		}
		zap.L().Info("order notification sent",
			zap.String("email", email),
			zap.String("status", rec.Status))
	})
	if err != nil {
		zap.L().Warn("order notification dropped",
			zap.String("email", email),
			zap.Error(err))
	}
}

// Release stops the worker pool. Queued sends already running finish.
func (d *Dispatcher) Release() {
	d.pool.Release()
}
