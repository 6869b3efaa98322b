package dto

import (
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/SscSPs/wealth_tracker/internal/core/engine"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	ID             *string `json:"id"` // Optional, a uuid is generated when absent
	Name           string  `json:"name" binding:"required"`
	Currency       string  `json:"currency" binding:"required,currency"`
	OpeningBalance string  `json:"opening_balance" binding:"omitempty,decimal"` // Defaults to 0
	OpenedOn       string  `json:"opened_on" binding:"required,isodate"`
	AccountType    string  `json:"account_type" binding:"omitempty,oneof=CHECKING SAVINGS INVESTMENT OTHER"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name        *string `json:"name"`
	AccountType *string `json:"account_type" binding:"omitempty,oneof=CHECKING SAVINGS INVESTMENT OTHER"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Currency       string        `json:"currency"`
	OpeningBalance MoneyResponse `json:"opening_balance"`
	OpenedOn       string        `json:"opened_on"`
	AccountType    string        `json:"account_type"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// BalanceParams defines query parameters of the balance endpoint.
type BalanceParams struct {
	At string `form:"at" binding:"omitempty,isodate"`
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountID      string        `json:"account_id"`
	At             *string       `json:"at"`
	OpeningBalance MoneyResponse `json:"opening_balance"`
	EntriesSum     MoneyResponse `json:"entries_sum"`
	Balance        MoneyResponse `json:"balance"`
	EntryCount     int           `json:"entry_count"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:             acc.ID,
		Name:           acc.Name,
		Currency:       string(acc.Currency),
		OpeningBalance: ToMoneyResponse(acc.OpeningBalance),
		OpenedOn:       formatDate(acc.OpenedOn),
		AccountType:    string(acc.AccountType),
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: res}
}

// ToAccountBalanceResponse converts a balance summary.
func ToAccountBalanceResponse(accountID string, at *string, b engine.BalanceSummary) AccountBalanceResponse {
	return AccountBalanceResponse{
		AccountID:      accountID,
		At:             at,
		OpeningBalance: ToMoneyResponse(b.Opening),
		EntriesSum:     ToMoneyResponse(b.EntriesSum),
		Balance:        ToMoneyResponse(b.Balance),
		EntryCount:     b.EntryCount,
	}
}
