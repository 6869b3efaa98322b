package dto

import "github.com/SscSPs/wealth_tracker/internal/core/domain"

// CreateInstrumentRequest registers a tradable instrument.
type CreateInstrumentRequest struct {
	Symbol   string `json:"symbol" binding:"required" example:"CW8"`
	Kind     string `json:"kind" binding:"required,oneof=STOCK ETF CRYPTO OTHER"`
	Currency string `json:"currency" binding:"required,currency"`
}

type InstrumentResponse struct {
	Symbol   string `json:"symbol"`
	Kind     string `json:"kind"`
	Currency string `json:"currency"`
}

type ListInstrumentsResponse struct {
	Instruments []InstrumentResponse `json:"instruments"`
}

func ToInstrumentResponse(i *domain.Instrument) InstrumentResponse {
	return InstrumentResponse{Symbol: i.Symbol, Kind: string(i.Kind), Currency: string(i.Currency)}
}

func ToListInstrumentsResponse(instruments []domain.Instrument) ListInstrumentsResponse {
	res := make([]InstrumentResponse, len(instruments))
	for i := range instruments {
		res[i] = ToInstrumentResponse(&instruments[i])
	}
	return ListInstrumentsResponse{Instruments: res}
}
