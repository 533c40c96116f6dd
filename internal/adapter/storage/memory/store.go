// Package memory keeps every table in process memory. It backs the service
// when no database is configured and serves as the reference store in tests.
package memory

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/MikeRez0/orderdesk/internal/core/port"
	"github.com/google/uuid"
)

type tables struct {
	users    map[uuid.UUID]domain.User
	clients  map[uuid.UUID]domain.Client
	products map[uuid.UUID]domain.Product
	images   map[uuid.UUID]domain.ProductImage
	orders   map[uuid.UUID]domain.Order
	lines    map[uuid.UUID]domain.OrderLine
	// lineOrder keeps insertion order of lines per order.
	lineOrder map[uuid.UUID][]uuid.UUID
}

func newTables() *tables {
	return &tables{
		users:     make(map[uuid.UUID]domain.User),
		clients:   make(map[uuid.UUID]domain.Client),
		products:  make(map[uuid.UUID]domain.Product),
		images:    make(map[uuid.UUID]domain.ProductImage),
		orders:    make(map[uuid.UUID]domain.Order),
		lines:     make(map[uuid.UUID]domain.OrderLine),
		lineOrder: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (t *tables) clone() *tables {
	c := &tables{
		users:     cloneMap(t.users),
		clients:   cloneMap(t.clients),
		products:  cloneMap(t.products),
		images:    cloneMap(t.images),
		orders:    cloneMap(t.orders),
		lines:     cloneMap(t.lines),
		lineOrder: make(map[uuid.UUID][]uuid.UUID, len(t.lineOrder)),
	}
	for k, v := range t.lineOrder {
		c.lineOrder[k] = append([]uuid.UUID(nil), v...)
	}
	return c
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	c := make(map[K]V, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// Store implements port.Repository. A unit of work holds the write lock for
// its whole duration and works on a copy of the tables that replaces the
// live ones only when the unit of work succeeds.
type Store struct {
	mu  sync.RWMutex
	t   *tables
	now func() time.Time
}

func NewStore() *Store {
	return &Store{t: newTables(), now: time.Now}
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) WithinTx(ctx context.Context, fn port.TxFn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	uow := &unitOfWork{t: s.t.clone(), now: s.now}
	if err := fn(ctx, uow); err != nil {
		return err
	}
	s.t = uow.t
	return nil
}

func (s *Store) read(fn func(t *tables) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.t)
}

func (s *Store) write(fn func(t *tables) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.t)
}

// page sorts items newest first, ties by id, and cuts the requested window.
func page[T any](items []T, key func(T) (time.Time, uuid.UUID), p domain.Page) []T {
	sort.Slice(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return bytes.Compare(idi[:], idj[:]) < 0
	})
	from := int(p.Offset())
	if from >= len(items) {
		return []T{}
	}
	to := from + p.Limit
	if to > len(items) {
		to = len(items)
	}
	return items[from:to]
}

var _ port.Repository = (*Store)(nil)
