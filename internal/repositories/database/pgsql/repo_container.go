package pgsql

import (
	portsrepo "github.com/SscSPs/wealth_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:      newTxManager(dbPool),
		AccountRepo:    newPgxAccountRepository(dbPool),
		EntryRepo:      newPgxEntryRepository(dbPool),
		PortfolioRepo:  newPgxPortfolioRepository(dbPool),
		SnapshotRepo:   newPgxSnapshotRepository(dbPool),
		TradeRepo:      newPgxTradeRepository(dbPool),
		InstrumentRepo: newPgxInstrumentRepository(dbPool),
	}
}
