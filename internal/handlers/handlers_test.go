package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/wealth_tracker/internal/core/services"
	"github.com/SscSPs/wealth_tracker/internal/dto"
	"github.com/SscSPs/wealth_tracker/internal/handlers"
	"github.com/SscSPs/wealth_tracker/internal/platform/config"
	"github.com/SscSPs/wealth_tracker/internal/repositories/memory"
	"github.com/SscSPs/wealth_tracker/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret-for-handlers"

type HandlersTestSuite struct {
	suite.Suite
	router *gin.Engine
	cfg    *config.Config
	token  string
}

func (suite *HandlersTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (suite *HandlersTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		StorageDriver:   config.StorageDriverMemory,
		JWTSecret:       testJWTSecret,
		JWTIssuer:       "wealth-tracker-test",
		DefaultCurrency: "EUR",
	}
	suite.token = ""
	suite.buildRouter()
}

func (suite *HandlersTestSuite) buildRouter() {
	container, err := services.NewServiceContainer(suite.cfg, memory.NewRepositoryProvider(memory.NewStore()), nil)
	suite.Require().NoError(err)
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.cfg, container)
}

func (suite *HandlersTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, "/api/v1"+path, reader)
	req.Header.Set("Content-Type", "application/json")
	if suite.token != "" {
		req.Header.Set("Authorization", "Bearer "+suite.token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (suite *HandlersTestSuite) createAccount(id, opening string) {
	w := suite.do(http.MethodPost, "/accounts", map[string]any{
		"id":              id,
		"name":            "Account " + id,
		"currency":        "EUR",
		"opening_balance": opening,
		"opened_on":       "2026-01-01",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (suite *HandlersTestSuite) postEntry(accountID, date, kind, amount string) *httptest.ResponseRecorder {
	return suite.do(http.MethodPost, "/accounts/"+accountID+"/entries", map[string]any{
		"date":     date,
		"amount":   amount,
		"kind":     kind,
		"category": "general",
	})
}

func (suite *HandlersTestSuite) TestHealth() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestAccountLifecycle() {
	suite.createAccount("main", "10")

	w := suite.do(http.MethodGet, "/accounts/main", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var account dto.AccountResponse
	suite.decode(w, &account)
	suite.Equal("main", account.ID)
	suite.Equal("EUR", account.Currency)
	suite.Equal("10.00", account.OpeningBalance.Amount)
	suite.Equal("CHECKING", account.AccountType)

	w = suite.do(http.MethodPost, "/accounts", map[string]any{
		"id": "main", "name": "again", "currency": "EUR", "opened_on": "2026-01-01",
	})
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.do(http.MethodPatch, "/accounts/main", map[string]any{"name": "Renamed", "account_type": "SAVINGS"})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.decode(w, &account)
	suite.Equal("Renamed", account.Name)
	suite.Equal("SAVINGS", account.AccountType)

	w = suite.do(http.MethodGet, "/accounts", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var list dto.ListAccountsResponse
	suite.decode(w, &list)
	suite.Len(list.Accounts, 1)

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/accounts/main", nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/accounts/main", nil).Code)
}

func (suite *HandlersTestSuite) TestCreateAccount_BindingErrors() {
	w := suite.do(http.MethodPost, "/accounts", map[string]any{
		"name": "bad", "currency": "EURO", "opened_on": "2026-01-01",
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/accounts", map[string]any{
		"name": "bad", "currency": "EUR", "opened_on": "01/02/2026",
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	var body dto.ErrorResponse
	suite.decode(w, &body)
	suite.Contains(body.Error, "Invalid request format")
}

func (suite *HandlersTestSuite) TestEntriesAndBalance() {
	suite.createAccount("main", "10")

	w := suite.postEntry("main", "2026-01-02", "INCOME", "100")
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var income dto.EntryResponse
	suite.decode(w, &income)
	suite.Equal(1, income.Sequence)
	suite.Equal("100.00", income.Amount.Amount)

	w = suite.postEntry("main", "2026-01-02", "EXPENSE", "-30")
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var expense dto.EntryResponse
	suite.decode(w, &expense)
	suite.Equal(2, expense.Sequence)

	suite.Equal(http.StatusUnprocessableEntity, suite.postEntry("main", "2026-01-03", "EXPENSE", "30").Code)
	suite.Equal(http.StatusBadRequest, suite.postEntry("main", "2026-01-03", "TRANSFER", "30").Code)
	suite.Equal(http.StatusNotFound, suite.postEntry("ghost", "2026-01-03", "INCOME", "30").Code)

	w = suite.do(http.MethodGet, "/accounts/main/entries", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var page dto.ListEntriesResponse
	suite.decode(w, &page)
	suite.Require().Len(page.Entries, 2)
	for _, e := range page.Entries {
		suite.NotNil(e.BalanceAfter)
	}

	w = suite.do(http.MethodGet, "/accounts/main/balance", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var balance dto.AccountBalanceResponse
	suite.decode(w, &balance)
	suite.Equal("80.00", balance.Balance.Amount)
	suite.Equal(2, balance.EntryCount)

	w = suite.do(http.MethodGet, "/accounts/main/balance?at=2026-01-01", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.decode(w, &balance)
	suite.Equal("10.00", balance.Balance.Amount)

	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/accounts/main/balance?at=tomorrow", nil).Code)

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/accounts/main/entries/"+income.ID, nil).Code)
	w = suite.do(http.MethodGet, "/accounts/main/entries/"+expense.ID, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.decode(w, &expense)
	suite.Equal(1, expense.Sequence, "deleting an entry closes the sequence gap")
}

func (suite *HandlersTestSuite) TestTransferLifecycle() {
	suite.createAccount("checking", "100")
	suite.createAccount("savings", "0")

	w := suite.do(http.MethodPost, "/transfers", map[string]any{
		"from_account_id": "checking",
		"to_account_id":   "savings",
		"date":            "2026-01-10",
		"amount":          "25",
		"category":        "saving",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var transfer dto.TransferResponse
	suite.decode(w, &transfer)
	suite.Equal("-25.00", transfer.FromEntry.Amount.Amount)
	suite.Equal("25.00", transfer.ToEntry.Amount.Amount)
	suite.Equal("TRANSFER", transfer.ToEntry.Kind)

	w = suite.do(http.MethodDelete, "/accounts/checking/entries/"+transfer.FromEntry.ID, nil)
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.do(http.MethodPatch, "/transfers/"+transfer.TransferID, map[string]any{"amount": "40"})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.decode(w, &transfer)
	suite.Equal("-40.00", transfer.FromEntry.Amount.Amount)

	w = suite.do(http.MethodPost, "/transfers", map[string]any{
		"from_account_id": "checking", "to_account_id": "checking",
		"date": "2026-01-10", "amount": "5", "category": "x",
	})
	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	w = suite.do(http.MethodDelete, "/transfers/"+transfer.TransferID, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var deleted dto.DeleteTransferResponse
	suite.decode(w, &deleted)
	suite.Equal(transfer.FromEntry.ID, deleted.FromEntryID)
	suite.Equal(transfer.ToEntry.ID, deleted.ToEntryID)

	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/transfers/"+transfer.TransferID, nil).Code)
}

func (suite *HandlersTestSuite) TestImportCSV_RawBody() {
	suite.createAccount("main", "0")

	csvBody := "date,kind,amount,category,label\n" +
		"2026-02-01,INCOME,50,salary,February\n" +
		"2026-02-02,EXPENSE,-5,food,\n" +
		"2026-02-03,EXPENSE,5,food,wrong sign\n"
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/main/import-csv", strings.NewReader(csvBody))
	req.Header.Set("Content-Type", "text/csv")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.ImportEntriesResponse
	suite.decode(w, &res)
	suite.Equal(2, res.Imported)
	suite.Require().Len(res.Errors, 1)
	suite.Contains(res.Errors[0], "line 4")
}

func (suite *HandlersTestSuite) TestImportCSV_Multipart() {
	suite.createAccount("main", "0")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "entries.csv")
	suite.Require().NoError(err)
	_, err = part.Write([]byte("date,kind,amount,category\n2026-02-01,ADJUSTMENT,12.5,fix\n"))
	suite.Require().NoError(err)
	suite.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/main/import-csv", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.ImportEntriesResponse
	suite.decode(w, &res)
	suite.Equal(1, res.Imported)
	suite.Empty(res.Errors)
}

func (suite *HandlersTestSuite) TestImportCSV_MissingHeader() {
	suite.createAccount("main", "0")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/main/import-csv", strings.NewReader("foo,bar\n1,2\n"))
	req.Header.Set("Content-Type", "text/csv")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlersTestSuite) TestPortfolioTradesAndFullNetWorth() {
	suite.createAccount("main", "1000")

	w := suite.do(http.MethodPost, "/instruments", map[string]any{"symbol": "cw8", "kind": "ETF", "currency": "EUR"})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = suite.do(http.MethodPost, "/portfolios", map[string]any{
		"name": "PEA", "currency": "EUR", "portfolio_type": "PEA", "opened_on": "2026-01-01",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var portfolio dto.PortfolioResponse
	suite.decode(w, &portfolio)
	suite.NotEmpty(portfolio.CashAccountID)

	w = suite.do(http.MethodPost, "/portfolios/"+portfolio.ID+"/trades", map[string]any{
		"date": "2026-01-05", "side": "BUY", "instrument_symbol": "CW8",
		"quantity": "2", "price": "100", "fees": "1.5",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var trade dto.TradeResponse
	suite.decode(w, &trade)
	suite.NotNil(trade.LinkedCashTxID)

	w = suite.do(http.MethodGet, "/accounts/"+portfolio.CashAccountID+"/balance", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var balance dto.AccountBalanceResponse
	suite.decode(w, &balance)
	suite.Equal("-201.50", balance.Balance.Amount)

	w = suite.do(http.MethodPost, "/portfolios/"+portfolio.ID+"/snapshots", map[string]any{
		"date": "2026-01-31", "value": "210",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = suite.do(http.MethodGet, "/net-worth/full?at=2026-01-31", nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var nw dto.NetWorthResponse
	suite.decode(w, &nw)
	suite.Equal("1008.50", nw.Total.Amount)
	suite.Require().NotNil(nw.Portfolios)
	suite.Equal("210.00", nw.Portfolios.Amount)

	w = suite.do(http.MethodGet, "/net-worth/full?at=2026-01-31&include_portfolios=false", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.decode(w, &nw)
	suite.Equal("798.50", nw.Total.Amount)

	suite.Equal(http.StatusConflict, suite.do(http.MethodDelete, "/accounts/"+portfolio.CashAccountID, nil).Code)

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/portfolios/"+portfolio.ID+"/trades/"+trade.ID, nil).Code)
	w = suite.do(http.MethodGet, "/accounts/"+portfolio.CashAccountID+"/balance", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.decode(w, &balance)
	suite.Equal("0.00", balance.Balance.Amount)
}

func (suite *HandlersTestSuite) TestNetWorth_MixedCurrencies() {
	suite.createAccount("eur", "10")
	w := suite.do(http.MethodPost, "/accounts", map[string]any{
		"id": "usd", "name": "Dollars", "currency": "USD", "opening_balance": "5", "opened_on": "2026-01-01",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	suite.Equal(http.StatusUnprocessableEntity, suite.do(http.MethodGet, "/net-worth", nil).Code)

	w = suite.do(http.MethodGet, "/net-worth?currency=USD", nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var nw dto.NetWorthResponse
	suite.decode(w, &nw)
	suite.Equal("USD", nw.Currency)
	suite.Equal("5.00", nw.Total.Amount)
}

func (suite *HandlersTestSuite) TestAuthRequiredWhenEnabled() {
	suite.cfg.AuthEnabled = true
	suite.buildRouter()

	w := suite.do(http.MethodGet, "/accounts", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)

	suite.token = "not-a-jwt"
	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodGet, "/accounts", nil).Code)

	token, err := utils.GenerateJWT("owner", testJWTSecret, time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	suite.token = token
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/accounts", nil).Code)

	expired, err := utils.GenerateJWT("owner", testJWTSecret, -time.Minute, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	suite.token = expired
	w = suite.do(http.MethodGet, "/accounts", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "expired")
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
