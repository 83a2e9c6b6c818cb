package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/cashclose_app/internal/core/domain"
	"github.com/SscSPs/cashclose_app/internal/utils"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorAccent lipgloss.Color = "#89b4fa"
	colorMuted  lipgloss.Color = "#6c7086"
	colorGreen  lipgloss.Color = "#a6e3a1"
	colorYellow lipgloss.Color = "#f9e2af"
	colorRed    lipgloss.Color = "#f38ba8"

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	successStyle = lipgloss.NewStyle().Foreground(colorGreen)
	warnStyle    = lipgloss.NewStyle().Foreground(colorYellow)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	numberStyle  = cellStyle.Align(lipgloss.Right)
)

func newTable(headers []string, numericFrom int) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col >= numericFrom:
				return numberStyle
			default:
				return cellStyle
			}
		})
}

func renderClosings(w io.Writer, records []domain.ClosingRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("Nenhum fechamento no período."))
		return
	}
	t := newTable([]string{"ID", "Data", "Crédito", "Débito", "PIX", "Dinheiro", "Boleto", "Faturamento", "Saldo Final"}, 2)
	for _, r := range records {
		t.Row(
			r.ID,
			r.DateString(),
			utils.FormatBRL(r.CreditCard),
			utils.FormatBRL(r.DebitCard),
			utils.FormatBRL(r.Pix),
			utils.FormatBRL(r.Cash),
			utils.FormatBRL(r.Boleto),
			utils.FormatBRL(r.TotalRevenue),
			utils.FormatBRL(r.FinalBalance),
		)
	}
	fmt.Fprintln(w, t.String())
}

func renderClosing(w io.Writer, r *domain.ClosingRecord) {
	fmt.Fprintln(w, successStyle.Render("Fechamento registrado: "+r.ID))
	t := newTable([]string{"Campo", "Valor"}, 1)
	t.Row("Data", r.DateString())
	t.Row("Abertura de Caixa", utils.FormatBRL(r.OpeningBalance))
	t.Row("Faturamento Total", utils.FormatBRL(r.TotalRevenue))
	t.Row("Saldo Final", utils.FormatBRL(r.FinalBalance))
	fmt.Fprintln(w, t.String())
}

func renderSummary(w io.Writer, s *domain.PeriodSummary) {
	fmt.Fprintln(w, titleStyle.Render(periodLabel(s.Range)))

	totals := newTable([]string{"Indicador", "Valor"}, 1)
	totals.Row("Faturamento", utils.FormatBRL(s.Totals.Revenue))
	totals.Row("PIX", utils.FormatBRL(s.Totals.Pix))
	totals.Row("Cartões", utils.FormatBRL(s.Totals.Cards))
	totals.Row("Dinheiro", utils.FormatBRL(s.Totals.Cash))
	totals.Row("Boleto", utils.FormatBRL(s.Totals.Boleto))
	totals.Row("Fechamentos", fmt.Sprint(s.Totals.Count))
	fmt.Fprintln(w, totals.String())

	if len(s.Breakdown) > 0 {
		breakdown := newTable([]string{"Forma", "Valor"}, 1)
		for _, b := range s.Breakdown {
			breakdown.Row(string(b.Method), utils.FormatBRL(b.Value))
		}
		fmt.Fprintln(w, breakdown.String())
	}

	if len(s.Series) > 0 {
		series := newTable([]string{"Data", "Total", "PIX", "Cartões"}, 1)
		for _, p := range s.Series {
			series.Row(p.Date, utils.FormatBRL(p.Total), utils.FormatBRL(p.Pix), utils.FormatBRL(p.Cards))
		}
		fmt.Fprintln(w, series.String())
	}
}

func renderAnalysis(w io.Writer, o *domain.AnalysisOutcome) {
	style := successStyle
	if o.Source == domain.AnalysisFallback {
		style = warnStyle
	}
	fmt.Fprintln(w, titleStyle.Render("Análise IA")+" "+mutedStyle.Render("("+string(o.Source)+")"))
	fmt.Fprintln(w, style.Render(o.Text))
}

func periodLabel(r domain.DateRange) string {
	var parts []string
	if r.Start != nil {
		parts = append(parts, "de "+r.Start.Format("02/01/2006"))
	}
	if r.End != nil {
		parts = append(parts, "até "+r.End.Format("02/01/2006"))
	}
	if len(parts) == 0 {
		return "Resumo: todo o período"
	}
	return "Resumo: " + strings.Join(parts, " ")
}
