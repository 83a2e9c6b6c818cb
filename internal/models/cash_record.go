package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashRecord is a row of the cash_records table.
type CashRecord struct {
	ID             string          `json:"id"`
	ClosingDate    time.Time       `json:"closing_date"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	CreditCard     decimal.Decimal `json:"credit_card"`
	DebitCard      decimal.Decimal `json:"debit_card"`
	Pix            decimal.Decimal `json:"pix"`
	Cash           decimal.Decimal `json:"cash"`
	Boleto         decimal.Decimal `json:"boleto"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	FinalBalance   decimal.Decimal `json:"final_balance"`
	Notes          *string         `json:"notes"`
	AIAnalysis     *string         `json:"ai_analysis"`
	CreatedBy      *string         `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
}
