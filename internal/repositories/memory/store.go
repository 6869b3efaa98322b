// Package memory keeps the ledger in process memory. It backs the
// STORAGE_DRIVER=memory mode and the service tests.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/wealth_tracker/internal/core/ports/repositories"
	"github.com/google/uuid"
)

// Store holds every table. Transactions are serialized by txMu and roll back
// by restoring a copy of the maps taken when they began. Reads outside a
// transaction may observe writes of a transaction still in flight.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	accounts    map[string]domain.Account
	entries     map[uuid.UUID]domain.LedgerEntry
	portfolios  map[uuid.UUID]domain.Portfolio
	snapshots   map[uuid.UUID]domain.PortfolioSnapshot
	trades      map[uuid.UUID]domain.Trade
	instruments map[string]domain.Instrument
}

func NewStore() *Store {
	return &Store{
		accounts:    make(map[string]domain.Account),
		entries:     make(map[uuid.UUID]domain.LedgerEntry),
		portfolios:  make(map[uuid.UUID]domain.Portfolio),
		snapshots:   make(map[uuid.UUID]domain.PortfolioSnapshot),
		trades:      make(map[uuid.UUID]domain.Trade),
		instruments: make(map[string]domain.Instrument),
	}
}

type txKey struct{}

// WithinTx implements portsrepo.TransactionManager.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	saved := s.copyTables()
	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.restore(saved)
		return err
	}
	return nil
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// write runs fn under the write lock. Outside a transaction it also waits
// for any running transaction, so a rollback never discards it.
func (s *Store) write(ctx context.Context, fn func() error) error {
	if !s.inTx(ctx) {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

func (s *Store) read(fn func()) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn()
}

type tables struct {
	accounts    map[string]domain.Account
	entries     map[uuid.UUID]domain.LedgerEntry
	portfolios  map[uuid.UUID]domain.Portfolio
	snapshots   map[uuid.UUID]domain.PortfolioSnapshot
	trades      map[uuid.UUID]domain.Trade
	instruments map[string]domain.Instrument
}

// copyTables is shallow: stored values are never mutated in place.
func (s *Store) copyTables() tables {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return tables{
		accounts:    maps.Clone(s.accounts),
		entries:     maps.Clone(s.entries),
		portfolios:  maps.Clone(s.portfolios),
		snapshots:   maps.Clone(s.snapshots),
		trades:      maps.Clone(s.trades),
		instruments: maps.Clone(s.instruments),
	}
}

func (s *Store) restore(t tables) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = t.accounts
	s.entries = t.entries
	s.portfolios = t.portfolios
	s.snapshots = t.snapshots
	s.trades = t.trades
	s.instruments = t.instruments
}

// NewRepositoryProvider wires every repository onto one store.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:      s,
		AccountRepo:    &AccountRepository{s: s},
		EntryRepo:      &EntryRepository{s: s},
		PortfolioRepo:  &PortfolioRepository{s: s},
		SnapshotRepo:   &SnapshotRepository{s: s},
		TradeRepo:      &TradeRepository{s: s},
		InstrumentRepo: &InstrumentRepository{s: s},
	}
}

var _ portsrepo.TransactionManager = (*Store)(nil)
