package domain

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/cashclose_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-day wire format used for closing dates.
const DateLayout = "2006-01-02"

// ClosingRecord is one day's cash-closing entry.
// TotalRevenue and FinalBalance are derived once, at creation, and never recomputed.
type ClosingRecord struct {
	ID             string          `json:"id"`
	Date           time.Time       `json:"date"` // calendar day at UTC midnight
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

// HasAnalysis reports whether a narrative has already been attached.
func (r ClosingRecord) HasAnalysis() bool {
	return r.AIAnalysis != nil && *r.AIAnalysis != ""
}

// DateString returns the closing date as YYYY-MM-DD.
func (r ClosingRecord) DateString() string {
	return r.Date.Format(DateLayout)
}

// ClosingInput is a closing submission after coercion, before identity and derived totals are assigned.
type ClosingInput struct {
	Date           time.Time
	OpeningBalance decimal.Decimal `validate:"nonnegative,maxamount"`
	CreditCard     decimal.Decimal `validate:"nonnegative,maxamount"`
	DebitCard      decimal.Decimal `validate:"nonnegative,maxamount"`
	Pix            decimal.Decimal `validate:"nonnegative,maxamount"`
	Cash           decimal.Decimal `validate:"nonnegative,maxamount"`
	Boleto         decimal.Decimal `validate:"nonnegative,maxamount"`
	Notes          string
	CreatedBy      string
}

// AmountPlaces is the number of decimal places an amount is stored with.
const AmountPlaces = 2

// MaxAmount is the exclusive upper bound of any stored amount, derived totals included.
var MaxAmount = decimal.New(1, 12)

var inputValidator = newInputValidator()

func newInputValidator() *validator.Validate {
	v := validator.New()
	// Decimals reach the rules as their exact string form.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("nonnegative", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.Sign() >= 0
	})
	_ = v.RegisterValidation("maxamount", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && roundAmount(d).LessThan(MaxAmount)
	})
	return v
}

// Validate rejects a missing date, negative amounts and amounts too large to store.
func (in ClosingInput) Validate() error {
	if in.Date.IsZero() {
		return apperrors.NewValidationError("closing date is required")
	}
	if err := inputValidator.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			var negative, oversized []string
			for _, fe := range verrs {
				if fe.Tag() == "maxamount" {
					oversized = append(oversized, fe.Field())
				} else {
					negative = append(negative, fe.Field())
				}
			}
			if len(negative) > 0 {
				return apperrors.NewValidationError(fmt.Sprintf("amounts must not be negative: %s", strings.Join(negative, ", ")))
			}
			return apperrors.NewValidationError(fmt.Sprintf("amounts must be below %s: %s", MaxAmount, strings.Join(oversized, ", ")))
		}
		return apperrors.NewValidationError(err.Error())
	}
	if !in.Rounded().FinalBalance().LessThan(MaxAmount) {
		return apperrors.NewValidationError(fmt.Sprintf("final balance must be below %s", MaxAmount))
	}
	return nil
}

// Rounded returns in with every amount rounded to AmountPlaces, the precision records are stored with.
func (in ClosingInput) Rounded() ClosingInput {
	in.OpeningBalance = roundAmount(in.OpeningBalance)
	in.CreditCard = roundAmount(in.CreditCard)
	in.DebitCard = roundAmount(in.DebitCard)
	in.Pix = roundAmount(in.Pix)
	in.Cash = roundAmount(in.Cash)
	in.Boleto = roundAmount(in.Boleto)
	return in
}

func roundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountPlaces)
}

// TotalRevenue sums every payment method, excluding the opening balance.
func (in ClosingInput) TotalRevenue() decimal.Decimal {
	return in.CreditCard.Add(in.DebitCard).Add(in.Pix).Add(in.Cash).Add(in.Boleto)
}

// FinalBalance is TotalRevenue plus the opening balance.
func (in ClosingInput) FinalBalance() decimal.Decimal {
	return in.TotalRevenue().Add(in.OpeningBalance)
}

// NewClosingRecord builds a record from validated input. Amounts are rounded to
// AmountPlaces first, so both derived totals are exact sums of the stored amounts.
func NewClosingRecord(id string, in ClosingInput, createdAt time.Time) ClosingRecord {
	in = in.Rounded()
	rec := ClosingRecord{
		ID:             id,
		Date:           Day(in.Date),
		OpeningBalance: in.OpeningBalance,
		CreditCard:     in.CreditCard,
		DebitCard:      in.DebitCard,
		Pix:            in.Pix,
		Cash:           in.Cash,
		Boleto:         in.Boleto,
		TotalRevenue:   in.TotalRevenue(),
		FinalBalance:   in.FinalBalance(),
		CreatedAt:      createdAt.UTC(),
	}
	if notes := strings.TrimSpace(in.Notes); notes != "" {
		rec.Notes = &notes
	}
	if in.CreatedBy != "" {
		createdBy := in.CreatedBy
		rec.CreatedBy = &createdBy
	}
	return rec
}

// Day truncates t to its calendar day at UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a calendar day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", s))
	}
	return t, nil
}

// SortClosingsDesc orders records newest date first; records sharing a date are ordered newest created first.
func SortClosingsDesc(records []ClosingRecord) {
	slices.SortStableFunc(records, func(a, b ClosingRecord) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
