package export

import (
	"fmt"
	"io"

	"github.com/SscSPs/cashclose_app/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

// XLSXContentType is the MIME type of the workbook written by WriteClosingsXLSX.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	closingsSheet  = "Fechamentos"
	breakdownSheet = "Formas de Pagamento"
)

var closingHeadings = []string{
	"Data", "Abertura", "Crédito", "Débito", "PIX", "Dinheiro", "Boleto",
	"Faturamento Total", "Saldo Final", "Observações", "Análise IA", "Criado Por",
}

// Filename is the suggested download name for a period export.
func Filename(r domain.DateRange) string {
	start, end := "inicio", "hoje"
	if r.Start != nil {
		start = r.Start.Format(domain.DateLayout)
	}
	if r.End != nil {
		end = r.End.Format(domain.DateLayout)
	}
	return fmt.Sprintf("fechamentos_%s_%s.xlsx", start, end)
}

// WriteClosingsXLSX writes the summary's records, a totals row and the payment breakdown as an xlsx workbook.
func WriteClosingsXLSX(w io.Writer, summary domain.PeriodSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", closingsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeRow(f, closingsSheet, 1, toAny(closingHeadings)); err != nil {
		return err
	}

	row := 2
	for _, rec := range summary.Records {
		values := []any{
			rec.DateString(),
			rec.OpeningBalance.InexactFloat64(),
			rec.CreditCard.InexactFloat64(),
			rec.DebitCard.InexactFloat64(),
			rec.Pix.InexactFloat64(),
			rec.Cash.InexactFloat64(),
			rec.Boleto.InexactFloat64(),
			rec.TotalRevenue.InexactFloat64(),
			rec.FinalBalance.InexactFloat64(),
			deref(rec.Notes),
			deref(rec.AIAnalysis),
			deref(rec.CreatedBy),
		}
		if err := writeRow(f, closingsSheet, row, values); err != nil {
			return err
		}
		row++
	}

	t := summary.Totals
	totals := []any{
		"Total",
		t.OpeningBalance.InexactFloat64(),
		t.CreditCard.InexactFloat64(),
		t.DebitCard.InexactFloat64(),
		t.Pix.InexactFloat64(),
		t.Cash.InexactFloat64(),
		t.Boleto.InexactFloat64(),
		t.Revenue.InexactFloat64(),
		t.FinalBalance.InexactFloat64(),
	}
	if err := writeRow(f, closingsSheet, row, totals); err != nil {
		return err
	}

	if _, err := f.NewSheet(breakdownSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := writeRow(f, breakdownSheet, 1, []any{"Forma", "Valor"}); err != nil {
		return err
	}
	for i, slice := range summary.Breakdown {
		if err := writeRow(f, breakdownSheet, i+2, []any{string(slice.Method), slice.Value.InexactFloat64()}); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
