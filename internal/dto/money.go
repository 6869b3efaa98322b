package dto

import (
	"time"

	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/SscSPs/wealth_tracker/internal/utils"
)

// MoneyResponse is the wire form of every monetary amount.
type MoneyResponse struct {
	Amount   string `json:"amount" example:"-12.34"`
	Currency string `json:"currency" example:"EUR"`
	Display  string `json:"display" example:"-€12.34"`
}

// ToMoneyResponse converts a signed amount.
func ToMoneyResponse(m domain.SignedMoney) MoneyResponse {
	return MoneyResponse{
		Amount:   m.StringFixed(),
		Currency: string(m.Currency()),
		Display:  utils.FormatDisplay(m.Amount(), m.Currency()),
	}
}

// ToMoneyResponseFromMoney converts a non-negative amount.
func ToMoneyResponseFromMoney(m domain.Money) MoneyResponse {
	return ToMoneyResponse(m.Signed())
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// OptionalDate formats t as YYYY-MM-DD, keeping nil as nil.
func OptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

func formatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}
