package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/wealth_tracker/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// inlineTx runs units of work without isolation.
type inlineTx struct{}

func (inlineTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// MockEntryRepository is a mock type for the EntryRepositoryFacade interface
type MockEntryRepository struct {
	mock.Mock
}

var _ portsrepo.EntryRepositoryFacade = (*MockEntryRepository)(nil)

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, entryID uuid.UUID) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockEntryRepository) ListEntries(ctx context.Context, accountID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockEntryRepository) FindEntriesByTransferID(ctx context.Context, transferID uuid.UUID) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, transferID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockEntryRepository) NextSequence(ctx context.Context, accountID string, date time.Time) (int, error) {
	args := m.Called(ctx, accountID, date)
	return args.Int(0), args.Error(1)
}

func (m *MockEntryRepository) CloseSequenceGap(ctx context.Context, accountID string, date time.Time, removed int) error {
	args := m.Called(ctx, accountID, date, removed)
	return args.Error(0)
}

func (m *MockEntryRepository) SaveEntries(ctx context.Context, entries ...domain.LedgerEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockEntryRepository) UpdateEntries(ctx context.Context, entries ...domain.LedgerEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockEntryRepository) DeleteEntry(ctx context.Context, accountID string, entryID uuid.UUID) (bool, error) {
	args := m.Called(ctx, accountID, entryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEntryRepository) DeleteEntriesByAccount(ctx context.Context, accountID string) (int, error) {
	args := m.Called(ctx, accountID)
	return args.Int(0), args.Error(1)
}

func (m *MockEntryRepository) DeleteTransfer(ctx context.Context, transferID uuid.UUID) (uuid.UUID, uuid.UUID, error) {
	args := m.Called(ctx, transferID)
	return args.Get(0).(uuid.UUID), args.Get(1).(uuid.UUID), args.Error(2)
}

// countingRecorder keeps the outcome of every recorded operation.
type countingRecorder struct {
	ok     map[string]int
	failed map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{ok: map[string]int{}, failed: map[string]int{}}
}

func (r *countingRecorder) RecordOperation(operation string, err error) {
	if err != nil {
		r.failed[operation]++
		return
	}
	r.ok[operation]++
}
