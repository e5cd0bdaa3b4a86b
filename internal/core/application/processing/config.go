package processing

import (
	"math/rand/v2"
	"time"

	"foodorders/internal/core/domain/model/order"
)

// DelayRange bounds the randomized wait before committing a stage edge.
// Both bounds are inclusive.
type DelayRange struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a uniformly distributed duration within the range.
func (r DelayRange) Random() time.Duration {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + time.Duration(rand.Int64N(int64(r.Max-r.Min)+1))
}

// Config carries the tunables of the lifecycle engine. Delay ranges are
// keyed by the edge's source stage.
type Config struct {
	// MaxConcurrentOrders caps how many orders may be in flight at once.
	MaxConcurrentOrders int

	// SettlingDelay is how long a dispatched run waits before its first
	// read, so the creating transaction is durably visible.
	SettlingDelay time.Duration

	PreparingDelay  DelayRange // Ordered -> Preparing
	InDeliveryDelay DelayRange // Preparing -> InDelivery
	DeliveredDelay  DelayRange // InDelivery -> Delivered
}

// DefaultConfig returns the production timings.
func DefaultConfig() Config {
	return Config{
		MaxConcurrentOrders: 3,
		SettlingDelay:       500 * time.Millisecond,
		PreparingDelay:      DelayRange{Min: 5 * time.Second, Max: 8 * time.Second},
		InDeliveryDelay:     DelayRange{Min: 8 * time.Second, Max: 12 * time.Second},
		DeliveredDelay:      DelayRange{Min: 10 * time.Second, Max: 15 * time.Second},
	}
}

func (c Config) delayFor(source order.Status) DelayRange {
	switch source {
	case order.Ordered:
		return c.PreparingDelay
	case order.Preparing:
		return c.InDeliveryDelay
	case order.InDelivery:
		return c.DeliveredDelay
	}
	return DelayRange{}
}
