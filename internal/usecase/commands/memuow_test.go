//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"github.com/Fabri-com/esteticas/internal/domain/appointment"
	"github.com/Fabri-com/esteticas/internal/domain/customer"
	"github.com/Fabri-com/esteticas/internal/domain/service"
	"github.com/Fabri-com/esteticas/internal/infra"
	sqlc "github.com/Fabri-com/esteticas/internal/infra/sqlc/generated"
	"github.com/Fabri-com/esteticas/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// memStore behaves like the relational store for the reservation path: a per-service lock
// held until the transaction ends and writes that become visible only on commit.
type memStore struct {
	mu           sync.Mutex
	serviceLocks map[uuid.UUID]*sync.Mutex
	services     map[uuid.UUID]*service.Service
	appointments map[uuid.UUID]*appointment.Appointment
	customers    map[string]uuid.UUID
	outbox       []shared.OutboxMessage
}

func newMemStore(services ...*service.Service) *memStore {
	s := &memStore{
		serviceLocks: make(map[uuid.UUID]*sync.Mutex),
		services:     make(map[uuid.UUID]*service.Service),
		appointments: make(map[uuid.UUID]*appointment.Appointment),
		customers:    make(map[string]uuid.UUID),
	}
	for _, svc := range services {
		s.services[svc.ID()] = svc
	}
	return s
}

func (s *memStore) lockFor(serviceID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.serviceLocks[serviceID]
	if !ok {
		l = &sync.Mutex{}
		s.serviceLocks[serviceID] = l
	}
	return l
}

func (s *memStore) byStatus(st appointment.Status) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, a := range s.appointments {
		if a.Status() == st {
			n++
		}
	}
	return n
}

func (s *memStore) outboxLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.outbox)
}

type memUoW struct {
	store *memStore
}

func (u *memUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memTx{store: u.store}
	defer tx.release()
	if err := fn(ctx, tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

func (u *memUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *memUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *memUoW) CommandReads() shared.CommandReads { return memReads{store: u.store} }

type memReads struct {
	store *memStore
}

func (r memReads) ServiceByID(_ context.Context, id uuid.UUID) (*service.Service, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	svc, ok := r.store.services[id]
	if !ok {
		return nil, infra.WrapRepoErr("service not found", pgx.ErrNoRows)
	}
	return svc, nil
}

type memTx struct {
	store     *memStore
	held      []*sync.Mutex
	pending   []*appointment.Appointment
	customers map[string]uuid.UUID
	outbox    []shared.OutboxMessage
	statuses  map[uuid.UUID]*appointment.Appointment
}

func (t *memTx) Appointments() shared.AppointmentRepository { return memAppointments{tx: t} }
func (t *memTx) Customers() shared.CustomerRepository       { return memCustomers{tx: t} }
func (t *memTx) Outbox() shared.OutboxRepository            { return memOutbox{tx: t} }
func (t *memTx) Users() shared.UserRepository               { return nil }
func (t *memTx) Reads() shared.CommandReads                 { return memReads{store: t.store} }
func (t *memTx) DB() sqlc.DBTX                              { return nil }

func (t *memTx) release() {
	for i := len(t.held) - 1; i >= 0; i-- {
		t.held[i].Unlock()
	}
	t.held = nil
}

func (t *memTx) commit() {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for _, a := range t.pending {
		t.store.appointments[a.ID()] = a
	}
	for _, a := range t.statuses {
		t.store.appointments[a.ID()] = a
	}
	for phone, id := range t.customers {
		t.store.customers[phone] = id
	}
	t.store.outbox = append(t.store.outbox, t.outbox...)
}

type memAppointments struct {
	tx *memTx
}

func (r memAppointments) LockService(_ context.Context, _ sqlc.DBTX, serviceID uuid.UUID) error {
	l := r.tx.store.lockFor(serviceID)
	l.Lock()
	r.tx.held = append(r.tx.held, l)
	return nil
}

func (r memAppointments) expire(now time.Time, match func(*appointment.Appointment) bool) (int64, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, a := range s.appointments {
		if !match(a) || !a.HoldExpired(now) {
			continue
		}
		if _, err := a.TransitionTo(appointment.StatusCancelled, now); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func (r memAppointments) ExpireStaleHolds(_ context.Context, _ sqlc.DBTX, serviceID uuid.UUID, now time.Time) (int64, error) {
	return r.expire(now, func(a *appointment.Appointment) bool { return a.ServiceID() == serviceID })
}

func (r memAppointments) ExpireAllStaleHolds(_ context.Context, _ sqlc.DBTX, now time.Time) (int64, error) {
	return r.expire(now, func(*appointment.Appointment) bool { return true })
}

func (r memAppointments) FindOverlapping(_ context.Context, _ sqlc.DBTX, serviceID uuid.UUID, interval appointment.Interval) ([]shared.OverlapSnapshot, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []shared.OverlapSnapshot
	for _, a := range s.appointments {
		if a.ServiceID() != serviceID || !a.Status().IsActive() || !a.Interval().Overlaps(interval) {
			continue
		}
		out = append(out, shared.OverlapSnapshot{
			ID:      a.ID(),
			StartAt: a.Interval().Start(),
			EndAt:   a.Interval().End(),
			Status:  a.Status().String(),
		})
	}
	return out, nil
}

func (r memAppointments) Create(_ context.Context, _ sqlc.DBTX, a *appointment.Appointment) (uuid.UUID, error) {
	r.tx.pending = append(r.tx.pending, a)
	return a.ID(), nil
}

func (r memAppointments) GetForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*appointment.Appointment, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appointments[id]
	if !ok {
		return nil, infra.WrapRepoErr("appointment not found", pgx.ErrNoRows)
	}
	return a, nil
}

func (r memAppointments) UpdateStatus(_ context.Context, _ sqlc.DBTX, a *appointment.Appointment) error {
	if r.tx.statuses == nil {
		r.tx.statuses = make(map[uuid.UUID]*appointment.Appointment)
	}
	r.tx.statuses[a.ID()] = a
	return nil
}

type memCustomers struct {
	tx *memTx
}

func (r memCustomers) Upsert(_ context.Context, _ sqlc.DBTX, c *customer.Customer) (uuid.UUID, error) {
	s := r.tx.store
	s.mu.Lock()
	id, ok := s.customers[c.Phone().String()]
	s.mu.Unlock()
	if ok {
		return id, nil
	}
	if r.tx.customers == nil {
		r.tx.customers = make(map[string]uuid.UUID)
	}
	if id, ok := r.tx.customers[c.Phone().String()]; ok {
		return id, nil
	}
	r.tx.customers[c.Phone().String()] = c.ID()
	return c.ID(), nil
}

type memOutbox struct {
	tx *memTx
}

func (r memOutbox) Enqueue(_ context.Context, _ sqlc.DBTX, msg shared.OutboxMessage) error {
	r.tx.outbox = append(r.tx.outbox, msg)
	return nil
}

func (r memOutbox) ClaimDue(context.Context, sqlc.DBTX, int, int) ([]shared.OutboxJob, error) {
	return nil, nil
}

func (r memOutbox) MarkPublished(context.Context, sqlc.DBTX, []uuid.UUID) error { return nil }

func (r memOutbox) MarkFailed(context.Context, sqlc.DBTX, []uuid.UUID, string) error { return nil }
