package processing_test

import (
	"context"
	"sync"
	"time"

	"foodorders/internal/core/application/processing"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/ports"
	"foodorders/internal/pkg/errs"
)

// fakeStore is an in-memory order store shared by the fake units of work.
// Orders are stored as snapshots, so mutations on a retrieved aggregate
// are invisible until Update, mirroring real persistence. Every write
// re-derives the in-flight count and records the highest value ever seen,
// so tests can assert the cap held at each commit point, not just at the
// end.
type fakeStore struct {
	mu          sync.Mutex
	orders      map[kernel.UUID]*order.Order
	maxInFlight int64

	// admissionMu stands in for the store-wide admission lock. It is
	// acquired through a unit of work's repository and released when that
	// unit of work commits or rolls back.
	admissionMu sync.Mutex
}

func newFakeStore() *fakeStore {
	return &fakeStore{orders: make(map[kernel.UUID]*order.Order)}
}

func cloneOrder(o *order.Order) *order.Order {
	c, err := order.RestoreOrder(
		o.ID(), o.CreatedBy(), o.Items(), o.Status(),
		o.IsActive(), o.IsProcessing(), o.CreatedAt(), o.ScheduledFor(), o.StatusUpdatedAt(),
	)
	if err != nil {
		panic(err)
	}
	return c
}

func (s *fakeStore) put(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID()] = cloneOrder(o)
	if n := s.countInStatusesLocked(order.InFlightStatuses()); n > s.maxInFlight {
		s.maxInFlight = n
	}
}

func (s *fakeStore) countInStatusesLocked(statuses []order.Status) int64 {
	var count int64
	for _, o := range s.orders {
		if !o.IsActive() {
			continue
		}
		for _, status := range statuses {
			if o.Status() == status {
				count++
				break
			}
		}
	}
	return count
}

// maxObservedInFlight reports the highest in-flight count any write has
// ever produced.
func (s *fakeStore) maxObservedInFlight() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxInFlight
}

func (s *fakeStore) get(id kernel.UUID) (*order.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, false
	}
	return cloneOrder(o), true
}

func (s *fakeStore) Add(_ context.Context, o *order.Order) error {
	s.put(o)
	return nil
}

func (s *fakeStore) Update(_ context.Context, o *order.Order) error {
	s.put(o)
	return nil
}

func (s *fakeStore) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	o, ok := s.get(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", id)
	}
	return o, nil
}

func (s *fakeStore) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return s.Get(ctx, id)
}

func (s *fakeStore) CountActiveInStatuses(_ context.Context, statuses []order.Status) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countInStatusesLocked(statuses), nil
}

func (s *fakeStore) FindDueForRelease(_ context.Context, now time.Time) ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var due []*order.Order
	for _, o := range s.orders {
		if o.IsActive() && o.Status() == order.Ordered && !o.IsProcessing() && o.IsDueAt(now) {
			due = append(due, cloneOrder(o))
		}
	}
	return due, nil
}

// fakeUoW satisfies processing.OrderUoW. Writes apply immediately, but
// the admission lock follows transaction semantics: once the repository
// acquires it, only Commit or Rollback lets it go.
type fakeUoW struct {
	store    *fakeStore
	lockHeld bool
}

func (u *fakeUoW) Begin(context.Context) error    { return nil }
func (u *fakeUoW) Commit(context.Context) error   { u.unlock(); return nil }
func (u *fakeUoW) Rollback(context.Context) error { u.unlock(); return nil }

func (u *fakeUoW) unlock() {
	if u.lockHeld {
		u.lockHeld = false
		u.store.admissionMu.Unlock()
	}
}

func (u *fakeUoW) OrderRepository() ports.OrderRepository {
	return &fakeTxRepo{fakeStore: u.store, uow: u}
}

// fakeTxRepo binds the shared store to one unit of work so the admission
// lock can be released on that unit's commit or rollback.
type fakeTxRepo struct {
	*fakeStore
	uow *fakeUoW
}

func (r *fakeTxRepo) AcquireAdmissionLock(context.Context) error {
	if !r.uow.lockHeld {
		r.fakeStore.admissionMu.Lock()
		r.uow.lockHeld = true
	}
	return nil
}

type fakeUoWFactory struct {
	store *fakeStore
}

func (f *fakeUoWFactory) Create() processing.OrderUoW {
	return &fakeUoW{store: f.store}
}

// fakeSink records diagnostic entries in memory.
type fakeSink struct {
	mu      sync.Mutex
	entries []string
}

func (s *fakeSink) Record(_ context.Context, operation string, _ *kernel.UUID, message string, _ kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, operation+": "+message)
	return nil
}

func (s *fakeSink) recorded() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.entries...)
}
