package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/SscSPs/cashclose_app/internal/core/domain"
	"github.com/SscSPs/cashclose_app/internal/utils/aggregation"
	"github.com/SscSPs/cashclose_app/internal/utils/export"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteClosingsXLSX(t *testing.T) {
	day, err := domain.ParseDay("2023-10-26")
	require.NoError(t, err)
	rec := domain.NewClosingRecord("rec-1", domain.ClosingInput{
		Date:           day,
		OpeningBalance: decimal.RequireFromString("150"),
		CreditCard:     decimal.RequireFromString("980"),
		DebitCard:      decimal.RequireFromString("560"),
		Pix:            decimal.RequireFromString("1200"),
		Cash:           decimal.RequireFromString("410"),
		Boleto:         decimal.RequireFromString("150"),
		Notes:          "movimento forte",
		CreatedBy:      "admin",
	}, time.Now())
	summary := aggregation.Summarize([]domain.ClosingRecord{rec}, domain.DateRange{})

	var buf bytes.Buffer
	require.NoError(t, export.WriteClosingsXLSX(&buf, summary))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Fechamentos")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Data", rows[0][0])
	assert.Equal(t, "2023-10-26", rows[1][0])
	assert.Equal(t, "3300", rows[1][7])
	assert.Equal(t, "3450", rows[1][8])
	assert.Equal(t, "movimento forte", rows[1][9])
	assert.Equal(t, "Total", rows[2][0])
	assert.Equal(t, "3300", rows[2][7])

	breakdown, err := f.GetRows("Formas de Pagamento")
	require.NoError(t, err)
	require.Len(t, breakdown, 6)
	assert.Equal(t, []string{"Crédito", "980"}, breakdown[1])
}

func TestFilename(t *testing.T) {
	r, err := domain.NewDateRange("2024-01-01", "")
	require.NoError(t, err)
	assert.Equal(t, "fechamentos_2024-01-01_hoje.xlsx", export.Filename(r))
}
