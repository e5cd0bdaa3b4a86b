package processing

import (
	"context"

	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/pkg/errs"
)

// ActiveOrderCounter is the read the admission decision is derived from.
// The production implementation counts rows in the order store.
type ActiveOrderCounter interface {
	CountActiveInStatuses(ctx context.Context, statuses []order.Status) (int64, error)
}

// AdmissionStore is the transactional view an authoritative admission
// decision runs against. The lock serializes concurrent decisions and is
// held until the enclosing transaction ends.
type AdmissionStore interface {
	ActiveOrderCounter
	AcquireAdmissionLock(ctx context.Context) error
}

// AdmissionPolicy decides whether another order may enter the in-flight
// stages. Every call re-counts the store, so the policy holds no state
// that could drift from reality across crashes or restarts.
type AdmissionPolicy struct {
	counter       ActiveOrderCounter
	maxConcurrent int
}

func NewAdmissionPolicy(counter ActiveOrderCounter, maxConcurrent int) (*AdmissionPolicy, error) {
	if counter == nil {
		return nil, errs.NewValueIsRequiredError("counter")
	}
	if maxConcurrent <= 0 {
		return nil, errs.NewValueIsInvalidError("maxConcurrent")
	}
	return &AdmissionPolicy{counter: counter, maxConcurrent: maxConcurrent}, nil
}

// TryAdmit reports whether the in-flight cap leaves room for one more
// order. The answer is advisory: the release sweep uses it as an early
// filter, and Admit repeats the decision inside the transaction that
// commits the first edge.
func (p *AdmissionPolicy) TryAdmit(ctx context.Context) (bool, error) {
	count, err := p.counter.CountActiveInStatuses(ctx, order.InFlightStatuses())
	if err != nil {
		return false, err
	}
	return count < int64(p.maxConcurrent), nil
}

// Admit makes the authoritative admission decision for the transaction
// the store is bound to. The admission lock is taken before counting, so
// two transactions can never observe the same free slot; whichever
// commits first makes its edge visible to the next lock holder's count.
func (p *AdmissionPolicy) Admit(ctx context.Context, store AdmissionStore) (bool, error) {
	if err := store.AcquireAdmissionLock(ctx); err != nil {
		return false, err
	}
	count, err := store.CountActiveInStatuses(ctx, order.InFlightStatuses())
	if err != nil {
		return false, err
	}
	return count < int64(p.maxConcurrent), nil
}
