package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/wealth_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wealth_tracker/internal/core/ports/services"
	"github.com/SscSPs/wealth_tracker/internal/core/services"
	"github.com/SscSPs/wealth_tracker/internal/dto"
	"github.com/SscSPs/wealth_tracker/internal/platform/config"
	"github.com/SscSPs/wealth_tracker/internal/repositories/memory"
	"github.com/stretchr/testify/suite"
)

// LedgerTestSuite drives the services against the in-memory store.
type LedgerTestSuite struct {
	suite.Suite
	ctx      context.Context
	repos    portsrepo.RepositoryProvider
	svc      *portssvc.ServiceContainer
	recorder *countingRecorder
}

func (suite *LedgerTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repos = memory.NewRepositoryProvider(memory.NewStore())
	suite.recorder = newCountingRecorder()
	svc, err := services.NewServiceContainer(&config.Config{DefaultCurrency: "EUR"}, suite.repos, suite.recorder)
	suite.Require().NoError(err)
	suite.svc = svc
}

func strPtr(s string) *string { return &s }

func (suite *LedgerTestSuite) account(id, currency, opening string) *domain.Account {
	acc, err := suite.svc.Account.CreateAccount(suite.ctx, dto.CreateAccountRequest{
		ID: &id, Name: "Account " + id, Currency: currency, OpeningBalance: opening, OpenedOn: "2026-01-01",
	})
	suite.Require().NoError(err)
	return acc
}

func (suite *LedgerTestSuite) entry(accountID, date, amount, kind string) *domain.LedgerEntry {
	e, err := suite.svc.Entry.CreateEntry(suite.ctx, accountID, dto.CreateEntryRequest{
		Date: date, Amount: amount, Kind: kind, Category: "General",
	})
	suite.Require().NoError(err)
	return e
}

func (suite *LedgerTestSuite) entries(accountID string) []dto.EntryResponse {
	res, err := suite.svc.Entry.ListEntries(suite.ctx, accountID, dto.ListEntriesParams{})
	suite.Require().NoError(err)
	return res.Entries
}

func (suite *LedgerTestSuite) balance(accountID string) string {
	res, err := suite.svc.Reporting.GetAccountBalance(suite.ctx, accountID, dto.BalanceParams{})
	suite.Require().NoError(err)
	return res.Balance.Amount
}

func (suite *LedgerTestSuite) TestEntries_SequencedPerDay() {
	suite.account("main", "EUR", "100")
	first := suite.entry("main", "2026-01-10", "50", "INCOME")
	second := suite.entry("main", "2026-01-10", "-20", "EXPENSE")
	other := suite.entry("main", "2026-01-11", "-5", "EXPENSE")

	suite.Equal(1, first.Sequence)
	suite.Equal(2, second.Sequence)
	suite.Equal(1, other.Sequence)

	rows := suite.entries("main")
	suite.Require().Len(rows, 3)
	suite.Equal("150.00", rows[0].BalanceAfter.Amount)
	suite.Equal("130.00", rows[1].BalanceAfter.Amount)
	suite.Equal("125.00", rows[2].BalanceAfter.Amount)
	suite.Equal(3, suite.recorder.ok["entry_create"])
}

func (suite *LedgerTestSuite) TestEntries_DeleteClosesSequenceGap() {
	suite.account("main", "EUR", "0")
	first := suite.entry("main", "2026-01-10", "1", "ADJUSTMENT")
	suite.entry("main", "2026-01-10", "2", "ADJUSTMENT")
	third := suite.entry("main", "2026-01-10", "3", "ADJUSTMENT")

	suite.Require().NoError(suite.svc.Entry.DeleteEntry(suite.ctx, "main", first.ID.String()))

	got, err := suite.svc.Entry.GetEntry(suite.ctx, "main", third.ID.String())
	suite.Require().NoError(err)
	suite.Equal(2, got.Sequence)
}

func (suite *LedgerTestSuite) TestEntries_UpdateMovingDateResequences() {
	suite.account("main", "EUR", "0")
	moved := suite.entry("main", "2026-01-10", "1", "ADJUSTMENT")
	stay := suite.entry("main", "2026-01-10", "2", "ADJUSTMENT")
	suite.entry("main", "2026-01-12", "3", "ADJUSTMENT")

	updated, err := suite.svc.Entry.UpdateEntry(suite.ctx, "main", moved.ID.String(), dto.UpdateEntryRequest{
		Date:  strPtr("2026-01-12"),
		Label: strPtr("moved"),
	})
	suite.Require().NoError(err)
	suite.Equal(2, updated.Sequence)
	suite.Equal("moved", *updated.Label)
	suite.Equal(moved.CreatedAt, updated.CreatedAt)

	got, err := suite.svc.Entry.GetEntry(suite.ctx, "main", stay.ID.String())
	suite.Require().NoError(err)
	suite.Equal(1, got.Sequence)
}

func (suite *LedgerTestSuite) TestEntries_UpdateBlankLabelClears() {
	suite.account("main", "EUR", "0")
	e, err := suite.svc.Entry.CreateEntry(suite.ctx, "main", dto.CreateEntryRequest{
		Date: "2026-01-10", Amount: "-4", Kind: "EXPENSE", Category: "Food", Label: strPtr("lunch"),
	})
	suite.Require().NoError(err)

	updated, err := suite.svc.Entry.UpdateEntry(suite.ctx, "main", e.ID.String(), dto.UpdateEntryRequest{Label: strPtr("")})
	suite.Require().NoError(err)
	suite.Nil(updated.Label)
}

func (suite *LedgerTestSuite) TestEntries_Rejections() {
	suite.account("main", "EUR", "0")

	_, err := suite.svc.Entry.CreateEntry(suite.ctx, "main", dto.CreateEntryRequest{
		Date: "2026-01-10", Amount: "5", Kind: "TRANSFER", Category: "x",
	})
	suite.ErrorIs(err, apperrors.ErrConflict)

	_, err = suite.svc.Entry.CreateEntry(suite.ctx, "main", dto.CreateEntryRequest{
		Date: "2026-01-10", Amount: "5", Kind: "EXPENSE", Category: "x",
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.svc.Entry.CreateEntry(suite.ctx, "nope", dto.CreateEntryRequest{
		Date: "2026-01-10", Amount: "5", Kind: "INCOME", Category: "x",
	})
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.svc.Entry.GetEntry(suite.ctx, "main", "not-a-uuid")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal(2, suite.recorder.failed["entry_create"])
}

func (suite *LedgerTestSuite) TestTransfer_Lifecycle() {
	suite.account("a", "EUR", "100")
	suite.account("b", "EUR", "0")
	suite.entry("b", "2026-01-10", "7", "INCOME")

	from, to, err := suite.svc.Transfer.CreateTransfer(suite.ctx, dto.CreateTransferRequest{
		FromAccountID: "a", ToAccountID: "b", Date: "2026-01-10", Amount: "40", Category: "Savings",
	})
	suite.Require().NoError(err)
	suite.Equal("-40.00", from.Amount.StringFixed())
	suite.Equal("40.00", to.Amount.StringFixed())
	suite.Equal(*from.TransferID, *to.TransferID)
	suite.Equal(1, from.Sequence)
	suite.Equal(2, to.Sequence)
	suite.Equal("60.00", suite.balance("a"))
	suite.Equal("47.00", suite.balance("b"))

	_, err = suite.svc.Entry.UpdateEntry(suite.ctx, "a", from.ID.String(), dto.UpdateEntryRequest{Label: strPtr("x")})
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.ErrorIs(suite.svc.Entry.DeleteEntry(suite.ctx, "b", to.ID.String()), apperrors.ErrConflict)

	transferID := from.TransferID.String()
	newFrom, newTo, err := suite.svc.Transfer.UpdateTransfer(suite.ctx, transferID, dto.UpdateTransferRequest{
		Amount: strPtr("25"), Date: strPtr("2026-01-15"),
	})
	suite.Require().NoError(err)
	suite.Equal("-25.00", newFrom.Amount.StringFixed())
	suite.Equal(1, newTo.Sequence)
	suite.Equal(from.ID, newFrom.ID)
	suite.Equal("75.00", suite.balance("a"))
	suite.Equal("32.00", suite.balance("b"))

	fromID, toID, err := suite.svc.Transfer.DeleteTransfer(suite.ctx, transferID)
	suite.Require().NoError(err)
	suite.Equal(from.ID, fromID)
	suite.Equal(to.ID, toID)
	suite.Equal("100.00", suite.balance("a"))

	_, _, err = suite.svc.Transfer.GetTransfer(suite.ctx, transferID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerTestSuite) TestTransfer_Rejections() {
	suite.account("a", "EUR", "0")
	suite.account("usd", "USD", "0")

	_, _, err := suite.svc.Transfer.CreateTransfer(suite.ctx, dto.CreateTransferRequest{
		FromAccountID: "a", ToAccountID: "a", Date: "2026-01-10", Amount: "1", Category: "x",
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, _, err = suite.svc.Transfer.CreateTransfer(suite.ctx, dto.CreateTransferRequest{
		FromAccountID: "a", ToAccountID: "usd", Date: "2026-01-10", Amount: "1", Category: "x",
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, _, err = suite.svc.Transfer.CreateTransfer(suite.ctx, dto.CreateTransferRequest{
		FromAccountID: "a", ToAccountID: "missing", Date: "2026-01-10", Amount: "1", Category: "x",
	})
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal(3, suite.recorder.failed["transfer_create"])
}

func (suite *LedgerTestSuite) TestDeleteAccount_RemovesWholeTransfers() {
	suite.account("a", "EUR", "0")
	suite.account("b", "EUR", "0")
	_, _, err := suite.svc.Transfer.CreateTransfer(suite.ctx, dto.CreateTransferRequest{
		FromAccountID: "a", ToAccountID: "b", Date: "2026-01-10", Amount: "10", Category: "x",
	})
	suite.Require().NoError(err)
	kept := suite.entry("b", "2026-01-10", "3", "INCOME")
	suite.Equal(2, kept.Sequence)

	suite.Require().NoError(suite.svc.Account.DeleteAccount(suite.ctx, "a"))

	rows := suite.entries("b")
	suite.Require().Len(rows, 1)
	suite.Equal(kept.ID.String(), rows[0].ID)
	suite.Equal(1, rows[0].Sequence)

	_, err = suite.svc.Account.GetAccountByID(suite.ctx, "a")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerTestSuite) portfolio(currency string) *domain.Portfolio {
	p, err := suite.svc.Portfolio.CreatePortfolio(suite.ctx, dto.CreatePortfolioRequest{
		Name: "Broker", Currency: currency, PortfolioType: "CTO", OpenedOn: "2026-01-01",
	})
	suite.Require().NoError(err)
	return p
}

func (suite *LedgerTestSuite) instrument(symbol, currency string) {
	_, err := suite.svc.Instrument.CreateInstrument(suite.ctx, dto.CreateInstrumentRequest{
		Symbol: symbol, Kind: "ETF", Currency: currency,
	})
	suite.Require().NoError(err)
}

func (suite *LedgerTestSuite) TestPortfolio_ProvisionsCashAccount() {
	p := suite.portfolio("EUR")

	cash, err := suite.svc.Account.GetAccountByID(suite.ctx, p.CashAccountID)
	suite.Require().NoError(err)
	suite.Equal("Passerelle - Broker", cash.Name)
	suite.Equal(domain.Other, cash.AccountType)
	suite.True(cash.OpeningBalance.IsZero())

	suite.ErrorIs(suite.svc.Account.DeleteAccount(suite.ctx, p.CashAccountID), apperrors.ErrConflict)
}

func (suite *LedgerTestSuite) TestTrades_MirrorCash() {
	p := suite.portfolio("EUR")
	suite.instrument("cw8", "EUR")

	trade, err := suite.svc.Trade.CreateTrade(suite.ctx, p.ID.String(), dto.CreateTradeRequest{
		Date: "2026-02-01", Side: "BUY", InstrumentSymbol: "CW8", Quantity: "2", Price: "100", Fees: "1.50",
	})
	suite.Require().NoError(err)
	suite.Require().NotNil(trade.LinkedCashEntryID)
	suite.Equal("-201.50", suite.balance(p.CashAccountID))

	mirror := suite.entries(p.CashAccountID)
	suite.Require().Len(mirror, 1)
	suite.Equal("EXPENSE", mirror[0].Kind)
	suite.Equal("BUY CW8", *mirror[0].Label)

	suite.ErrorIs(suite.svc.Entry.DeleteEntry(suite.ctx, p.CashAccountID, mirror[0].ID), apperrors.ErrConflict)

	updated, err := suite.svc.Trade.UpdateTrade(suite.ctx, p.ID.String(), trade.ID.String(), dto.UpdateTradeRequest{
		Side: strPtr("SELL"), Fees: strPtr("0"),
	})
	suite.Require().NoError(err)
	suite.NotEqual(*trade.LinkedCashEntryID, *updated.LinkedCashEntryID)
	suite.Equal("200.00", suite.balance(p.CashAccountID))
	suite.Len(suite.entries(p.CashAccountID), 1)

	suite.Require().NoError(suite.svc.Trade.DeleteTrade(suite.ctx, p.ID.String(), trade.ID.String()))
	suite.Equal("0.00", suite.balance(p.CashAccountID))
	suite.Empty(suite.entries(p.CashAccountID))
}

func (suite *LedgerTestSuite) TestTrades_Rejections() {
	p := suite.portfolio("EUR")
	other := suite.portfolio("EUR")
	suite.instrument("SPY", "USD")
	suite.instrument("CW8", "EUR")

	req := dto.CreateTradeRequest{Date: "2026-02-01", Side: "BUY", InstrumentSymbol: "NOPE", Quantity: "1", Price: "1"}
	_, err := suite.svc.Trade.CreateTrade(suite.ctx, p.ID.String(), req)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	req.InstrumentSymbol = "spy"
	_, err = suite.svc.Trade.CreateTrade(suite.ctx, p.ID.String(), req)
	suite.ErrorIs(err, apperrors.ErrValidation)

	req.InstrumentSymbol = "CW8"
	trade, err := suite.svc.Trade.CreateTrade(suite.ctx, p.ID.String(), req)
	suite.Require().NoError(err)

	suite.ErrorIs(suite.svc.Trade.DeleteTrade(suite.ctx, other.ID.String(), trade.ID.String()), apperrors.ErrValidation)

	_, err = suite.svc.Instrument.CreateInstrument(suite.ctx, dto.CreateInstrumentRequest{Symbol: "cw8", Kind: "ETF", Currency: "EUR"})
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *LedgerTestSuite) TestTrades_ListAndPositions() {
	p := suite.portfolio("EUR")
	suite.instrument("CW8", "EUR")
	suite.instrument("BTC", "EUR")

	create := func(date, side, symbol, qty string) {
		_, err := suite.svc.Trade.CreateTrade(suite.ctx, p.ID.String(), dto.CreateTradeRequest{
			Date: date, Side: side, InstrumentSymbol: symbol, Quantity: qty, Price: "10",
		})
		suite.Require().NoError(err)
	}
	create("2026-01-05", "BUY", "CW8", "10")
	create("2026-01-06", "SELL", "CW8", "4")
	create("2026-01-07", "BUY", "BTC", "1")
	create("2026-01-08", "SELL", "BTC", "1")

	positions, err := suite.svc.Trade.GetPositions(suite.ctx, p.ID.String(), dto.PositionsParams{})
	suite.Require().NoError(err)
	suite.Require().Len(positions.Positions, 1)
	suite.Equal("CW8", positions.Positions[0].Symbol)
	suite.Equal("6", positions.Positions[0].Quantity)

	asOf, err := suite.svc.Trade.GetPositions(suite.ctx, p.ID.String(), dto.PositionsParams{AsOf: "2026-01-07"})
	suite.Require().NoError(err)
	suite.Len(asOf.Positions, 2)

	page, err := suite.svc.Trade.ListTrades(suite.ctx, p.ID.String(), dto.ListTradesParams{
		Sides: []string{"BUY"}, SortDir: "desc", Limit: 1,
	})
	suite.Require().NoError(err)
	suite.Require().Len(page.Trades, 1)
	suite.Equal("BTC", page.Trades[0].InstrumentSymbol)
	suite.Require().NotNil(page.NextToken)

	next, err := suite.svc.Trade.ListTrades(suite.ctx, p.ID.String(), dto.ListTradesParams{
		Sides: []string{"BUY"}, SortDir: "desc", Limit: 1, NextToken: *page.NextToken,
	})
	suite.Require().NoError(err)
	suite.Require().Len(next.Trades, 1)
	suite.Equal("CW8", next.Trades[0].InstrumentSymbol)
	suite.Nil(next.NextToken)

	_, err = suite.svc.Trade.ListTrades(suite.ctx, p.ID.String(), dto.ListTradesParams{NextToken: *page.NextToken})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerTestSuite) TestPortfolio_DeleteCascades() {
	p := suite.portfolio("EUR")
	suite.account("bank", "EUR", "1000")
	suite.instrument("CW8", "EUR")
	_, err := suite.svc.Trade.CreateTrade(suite.ctx, p.ID.String(), dto.CreateTradeRequest{
		Date: "2026-02-01", Side: "BUY", InstrumentSymbol: "CW8", Quantity: "1", Price: "50",
	})
	suite.Require().NoError(err)
	_, _, err = suite.svc.Transfer.CreateTransfer(suite.ctx, dto.CreateTransferRequest{
		FromAccountID: "bank", ToAccountID: p.CashAccountID, Date: "2026-02-01", Amount: "50", Category: "Funding",
	})
	suite.Require().NoError(err)
	_, err = suite.svc.Portfolio.CreateSnapshot(suite.ctx, p.ID.String(), dto.CreateSnapshotRequest{Date: "2026-02-02", Value: "55"})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.svc.Portfolio.DeletePortfolio(suite.ctx, p.ID.String()))

	_, err = suite.svc.Account.GetAccountByID(suite.ctx, p.CashAccountID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Empty(suite.entries("bank"))
	suite.Equal("1000.00", suite.balance("bank"))

	trades, err := suite.repos.TradeRepo.ListTrades(suite.ctx, p.ID)
	suite.Require().NoError(err)
	suite.Empty(trades)
	snaps, err := suite.repos.SnapshotRepo.ListSnapshots(suite.ctx, p.ID)
	suite.Require().NoError(err)
	suite.Empty(snaps)
}

func (suite *LedgerTestSuite) TestSnapshots() {
	p := suite.portfolio("EUR")

	_, err := suite.svc.Portfolio.CreateSnapshot(suite.ctx, p.ID.String(), dto.CreateSnapshotRequest{
		Date: "2026-02-02", Value: "10", Currency: "USD",
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	snap, err := suite.svc.Portfolio.CreateSnapshot(suite.ctx, p.ID.String(), dto.CreateSnapshotRequest{
		Date: "2026-02-02", Value: "10", Note: strPtr("  "),
	})
	suite.Require().NoError(err)
	suite.Nil(snap.Note)

	other := suite.portfolio("EUR")
	suite.ErrorIs(suite.svc.Portfolio.DeleteSnapshot(suite.ctx, other.ID.String(), snap.ID.String()), apperrors.ErrNotFound)
	suite.NoError(suite.svc.Portfolio.DeleteSnapshot(suite.ctx, p.ID.String(), snap.ID.String()))
}

func (suite *LedgerTestSuite) TestNetWorth_MixedCurrenciesRejected() {
	suite.account("eur", "EUR", "100")
	suite.account("usd", "USD", "50")

	_, err := suite.svc.Reporting.GetNetWorth(suite.ctx, dto.NetWorthParams{})
	suite.ErrorIs(err, apperrors.ErrUnsupported)

	res, err := suite.svc.Reporting.GetNetWorth(suite.ctx, dto.NetWorthParams{Currency: "USD"})
	suite.Require().NoError(err)
	suite.Equal("50.00", res.Total.Amount)
	suite.Equal("USD", res.Currency)
}

func (suite *LedgerTestSuite) TestNetWorth_GroupedAndCutoff() {
	suite.account("check", "EUR", "100")
	savings, err := suite.svc.Account.CreateAccount(suite.ctx, dto.CreateAccountRequest{
		Name: "Livret", Currency: "EUR", OpeningBalance: "1000", OpenedOn: "2026-01-01", AccountType: "SAVINGS",
	})
	suite.Require().NoError(err)
	suite.entry("check", "2026-01-10", "-30", "EXPENSE")
	suite.entry(savings.ID, "2026-02-10", "5", "INCOME")

	at, err := suite.svc.Reporting.GetNetWorth(suite.ctx, dto.NetWorthParams{At: "2026-01-31"})
	suite.Require().NoError(err)
	suite.Equal("1070.00", at.Total.Amount)

	grouped, err := suite.svc.Reporting.GetGroupedNetWorth(suite.ctx, dto.NetWorthParams{})
	suite.Require().NoError(err)
	suite.Require().Len(grouped.Groups, 2)
	suite.Equal("CHECKING", grouped.Groups[0].AccountType)
	suite.Equal("70.00", grouped.Groups[0].Total.Amount)
	suite.Equal("SAVINGS", grouped.Groups[1].AccountType)
	suite.Equal("1005.00", grouped.Groups[1].Total.Amount)
	suite.Equal("1075.00", grouped.Total.Amount)

	filtered, err := suite.svc.Reporting.GetNetWorth(suite.ctx, dto.NetWorthParams{AccountType: "SAVINGS"})
	suite.Require().NoError(err)
	suite.Equal("1005.00", filtered.Total.Amount)
}

func (suite *LedgerTestSuite) TestNetWorth_FullAddsLatestSnapshot() {
	suite.account("check", "EUR", "100")
	p := suite.portfolio("EUR")
	for _, s := range []struct{ date, value string }{{"2026-01-15", "500"}, {"2026-02-15", "650"}} {
		_, err := suite.svc.Portfolio.CreateSnapshot(suite.ctx, p.ID.String(), dto.CreateSnapshotRequest{Date: s.date, Value: s.value})
		suite.Require().NoError(err)
	}

	full, err := suite.svc.Reporting.GetNetWorthFull(suite.ctx, dto.NetWorthParams{At: "2026-01-31"})
	suite.Require().NoError(err)
	suite.Equal("600.00", full.Total.Amount)
	suite.Equal("100.00", full.Cash.Amount)
	suite.Equal("500.00", full.Portfolios.Amount)

	excluded := false
	cashOnly, err := suite.svc.Reporting.GetNetWorthFull(suite.ctx, dto.NetWorthParams{IncludePortfolios: &excluded})
	suite.Require().NoError(err)
	suite.Equal("100.00", cashOnly.Total.Amount)

	series, err := suite.svc.Reporting.GetNetWorthFullTimeseries(suite.ctx, dto.NetWorthTimeseriesParams{
		TimeseriesParams: dto.TimeseriesParams{DateFrom: "2026-01-01", DateTo: "2026-03-31", Granularity: "monthly"},
	})
	suite.Require().NoError(err)
	suite.Require().Len(series.Points, 3)
	suite.Equal("600.00", series.Points[0].BalanceEnd.Amount)
	suite.Equal("750.00", series.Points[1].BalanceEnd.Amount)
	suite.Equal("750.00", series.Points[2].BalanceEnd.Amount)
}

func (suite *LedgerTestSuite) TestNetWorth_NoAccountsUsesFallback() {
	res, err := suite.svc.Reporting.GetNetWorthTimeseries(suite.ctx, dto.NetWorthTimeseriesParams{
		TimeseriesParams: dto.TimeseriesParams{DateFrom: "2026-01-01", DateTo: "2026-01-03"},
	})
	suite.Require().NoError(err)
	suite.Equal("daily", res.Granularity)
	suite.Require().Len(res.Points, 3)
	suite.Equal("EUR", res.Points[0].BalanceEnd.Currency)

	usd, err := suite.svc.Reporting.GetNetWorth(suite.ctx, dto.NetWorthParams{Currency: "USD"})
	suite.Require().NoError(err)
	suite.Equal("USD", usd.Currency)
}

func (suite *LedgerTestSuite) TestReporting_TimeseriesRangeValidation() {
	suite.account("main", "EUR", "0")
	_, err := suite.svc.Reporting.GetAccountTimeseries(suite.ctx, "main", dto.TimeseriesParams{
		DateFrom: "2026-02-01", DateTo: "2026-01-01",
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerTestSuite) TestBudgetSummary_Window() {
	suite.account("main", "EUR", "0")
	suite.entry("main", "2026-01-05", "-10", "EXPENSE")
	suite.entry("main", "2026-02-05", "-20", "EXPENSE")
	suite.entry("main", "2026-02-06", "100", "INCOME")

	res, err := suite.svc.Reporting.GetBudgetSummary(suite.ctx, "main", dto.BudgetParams{DateFrom: "2026-02-01"})
	suite.Require().NoError(err)
	suite.Require().Len(res.ExpenseByCategory, 1)
	suite.Equal("-20.00", res.ExpenseByCategory[0].Total.Amount)
	suite.Len(res.TotalsByKind, 2)
}

func (suite *LedgerTestSuite) TestImportCSV() {
	suite.account("main", "EUR", "0")
	csvData := "\ufeffDate,Kind,Amount,Category,Subcategory,Label\n" +
		"2026-01-10,INCOME,100,Salary,,January\n" +
		"2026-01-10,EXPENSE,25,Food,,wrong sign\n" +
		"2026-01-11,TRANSFER,5,Move,,\n" +
		"2026-01-12,expense,-12.5,Food,Groceries,\n"

	res, err := suite.svc.Entry.ImportCSV(suite.ctx, "main", strings.NewReader(csvData))
	suite.Require().NoError(err)
	suite.Equal(2, res.Imported)
	suite.Require().Len(res.Errors, 2)
	suite.Contains(res.Errors[0], "line 3")
	suite.Contains(res.Errors[1], "line 4")
	suite.Equal("87.50", suite.balance("main"))

	_, err = suite.svc.Entry.ImportCSV(suite.ctx, "main", strings.NewReader("date,amount\n"))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}
