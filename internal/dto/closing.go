package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/SscSPs/cashclose_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FlexibleAmount accepts a JSON number, a JSON string or null and keeps the raw text.
// Interpretation is left to domain.CoerceAmount.
type FlexibleAmount string

// UnmarshalJSON implements json.Unmarshaler.
func (a *FlexibleAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = FlexibleAmount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		// Objects, arrays and booleans coerce to zero like any other unparsable amount.
		*a = ""
		return nil
	}
	*a = FlexibleAmount(n.String())
	return nil
}

// CreateClosingRequest is the closing form as posted by the client.
type CreateClosingRequest struct {
	Date           string         `json:"date" binding:"required" example:"2023-10-26"`
	OpeningBalance FlexibleAmount `json:"openingBalance" swaggertype:"string" example:"150.00"`
	CreditCard     FlexibleAmount `json:"creditCard" swaggertype:"string" example:"980.00"`
	DebitCard      FlexibleAmount `json:"debitCard" swaggertype:"string" example:"560.00"`
	Pix            FlexibleAmount `json:"pix" swaggertype:"string" example:"1200,00"`
	Cash           FlexibleAmount `json:"cash" swaggertype:"string" example:"410"`
	Boleto         FlexibleAmount `json:"boleto" swaggertype:"string" example:"150"`
	Notes          string         `json:"notes" binding:"max=2000"`
}

// ToRawForm hands the request to form intake.
func (r CreateClosingRequest) ToRawForm() domain.RawClosingForm {
	return domain.RawClosingForm{
		Date:           r.Date,
		OpeningBalance: string(r.OpeningBalance),
		CreditCard:     string(r.CreditCard),
		DebitCard:      string(r.DebitCard),
		Pix:            string(r.Pix),
		Cash:           string(r.Cash),
		Boleto:         string(r.Boleto),
		Notes:          r.Notes,
	}
}

// ListClosingsParams are the optional period bounds shared by list, summary and export.
type ListClosingsParams struct {
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// ToDateRange parses the bounds.
func (p ListClosingsParams) ToDateRange() (domain.DateRange, error) {
	return domain.NewDateRange(p.StartDate, p.EndDate)
}

// ClosingResponse is one record on the wire.
type ClosingResponse struct {
	ID             string          `json:"id"`
	Date           string          `json:"date"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	CreditCard     decimal.Decimal `json:"creditCard"`
	DebitCard      decimal.Decimal `json:"debitCard"`
	Pix            decimal.Decimal `json:"pix"`
	Cash           decimal.Decimal `json:"cash"`
	Boleto         decimal.Decimal `json:"boleto"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	FinalBalance   decimal.Decimal `json:"finalBalance"`
	Notes          *string         `json:"notes,omitempty"`
	AIAnalysis     *string         `json:"aiAnalysis,omitempty"`
	CreatedBy      *string         `json:"createdBy,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ListClosingsResponse wraps a record list.
type ListClosingsResponse struct {
	Records []ClosingResponse `json:"records"`
}

// ToClosingResponse converts a domain record.
func ToClosingResponse(r *domain.ClosingRecord) ClosingResponse {
	return ClosingResponse{
		ID:             r.ID,
		Date:           r.DateString(),
		OpeningBalance: r.OpeningBalance,
		CreditCard:     r.CreditCard,
		DebitCard:      r.DebitCard,
		Pix:            r.Pix,
		Cash:           r.Cash,
		Boleto:         r.Boleto,
		TotalRevenue:   r.TotalRevenue,
		FinalBalance:   r.FinalBalance,
		Notes:          r.Notes,
		AIAnalysis:     r.AIAnalysis,
		CreatedBy:      r.CreatedBy,
		CreatedAt:      r.CreatedAt,
	}
}

// ToListClosingsResponse converts a record slice, never yielding a nil list.
func ToListClosingsResponse(records []domain.ClosingRecord) ListClosingsResponse {
	out := make([]ClosingResponse, len(records))
	for i := range records {
		out[i] = ToClosingResponse(&records[i])
	}
	return ListClosingsResponse{Records: out}
}
