package mapping

import (
	"github.com/SscSPs/cashclose_app/internal/core/domain"
	"github.com/SscSPs/cashclose_app/internal/models"
)

// ToModelCashRecord converts a domain ClosingRecord to a model CashRecord
func ToModelCashRecord(d domain.ClosingRecord) models.CashRecord {
	return models.CashRecord{
		ID:             d.ID,
		ClosingDate:    domain.Day(d.Date),
		OpeningBalance: d.OpeningBalance,
		CreditCard:     d.CreditCard,
		DebitCard:      d.DebitCard,
		Pix:            d.Pix,
		Cash:           d.Cash,
		Boleto:         d.Boleto,
		TotalRevenue:   d.TotalRevenue,
		FinalBalance:   d.FinalBalance,
		Notes:          d.Notes,
		AIAnalysis:     d.AIAnalysis,
		CreatedBy:      d.CreatedBy,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainClosingRecord converts a model CashRecord to a domain ClosingRecord
func ToDomainClosingRecord(m models.CashRecord) domain.ClosingRecord {
	return domain.ClosingRecord{
		ID:             m.ID,
		Date:           domain.Day(m.ClosingDate),
		OpeningBalance: m.OpeningBalance,
		CreditCard:     m.CreditCard,
		DebitCard:      m.DebitCard,
		Pix:            m.Pix,
		Cash:           m.Cash,
		Boleto:         m.Boleto,
		TotalRevenue:   m.TotalRevenue,
		FinalBalance:   m.FinalBalance,
		Notes:          m.Notes,
		AIAnalysis:     m.AIAnalysis,
		CreatedBy:      m.CreatedBy,
		CreatedAt:      m.CreatedAt.UTC(),
	}
}

// ToDomainClosingRecordSlice converts a slice of model CashRecords to a slice of domain ClosingRecords
func ToDomainClosingRecordSlice(ms []models.CashRecord) []domain.ClosingRecord {
	ds := make([]domain.ClosingRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClosingRecord(m)
	}
	return ds
}
