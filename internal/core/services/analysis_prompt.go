package services

import (
	"fmt"
	"strings"

	"github.com/SscSPs/cashclose_app/internal/core/domain"
	"github.com/SscSPs/cashclose_app/internal/utils"
	"github.com/shopspring/decimal"
)

// Payment labels as shown to the analyst.
const (
	labelOpeningBalance = "Abertura de Caixa"
	labelCreditCard     = "Cartão de Crédito"
	labelDebitCard      = "Cartão de Débito"
	labelPix            = "PIX"
	labelCash           = "Espécie (Dinheiro)"
	labelBoleto         = "Boleto"
	labelTotalRevenue   = "Faturamento Total"
)

// BuildAnalysisPrompt renders the pt-BR instruction sent to the text generator for one record.
func BuildAnalysisPrompt(rec domain.ClosingRecord) string {
	var b strings.Builder
	line := func(label string, amount decimal.Decimal) {
		fmt.Fprintf(&b, "- %s: %s\n", label, utils.FormatBRL(amount))
	}

	b.WriteString("Atue como um analista financeiro sênior. Analise o seguinte fechamento de caixa diário e ")
	b.WriteString("forneça insights breves e úteis (máximo 3 frases) sobre o desempenho do dia. ")
	b.WriteString("Identifique anomalias ou destaques positivos.\n\n")
	fmt.Fprintf(&b, "Dados do Fechamento (%s):\n", rec.DateString())
	line(labelOpeningBalance, rec.OpeningBalance)
	line(labelCreditCard, rec.CreditCard)
	line(labelDebitCard, rec.DebitCard)
	line(labelPix, rec.Pix)
	line(labelCash, rec.Cash)
	line(labelBoleto, rec.Boleto)
	b.WriteString("----------------\n")
	line(labelTotalRevenue, rec.TotalRevenue)
	b.WriteString("\nResponda em tom profissional e direto em Português do Brasil.")
	return b.String()
}
