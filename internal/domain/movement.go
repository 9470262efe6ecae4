package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind classifies the effect a movement has on the account balance.
type Kind string

const (
	KindIncome     Kind = "income"
	KindExpense    Kind = "expense"
	KindAdjustment Kind = "adjustment"
)

// ParseKind parses a kind from its string form.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindIncome:
		return KindIncome, nil
	case KindExpense:
		return KindExpense, nil
	case KindAdjustment:
		return KindAdjustment, nil
	}

	return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidKind, s)
}

// Valid reports whether the kind is one of the enumerated values.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense || k == KindAdjustment
}

// Source classifies where a movement originated.
type Source string

const (
	SourcePayroll Source = "payroll"
	SourceSupply  Source = "supply"
	SourceManual  Source = "manual"
	SourceOther   Source = "other"
)

// ParseSource parses a source from its string form.
func ParseSource(s string) (Source, error) {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case SourcePayroll:
		return SourcePayroll, nil
	case SourceSupply:
		return SourceSupply, nil
	case SourceManual:
		return SourceManual, nil
	case SourceOther:
		return SourceOther, nil
	}

	return "", fmt.Errorf("%w: unknown source %q", ErrInvalidSource, s)
}

// Valid reports whether the source is one of the enumerated values.
func (s Source) Valid() bool {
	return s == SourcePayroll || s == SourceSupply || s == SourceManual || s == SourceOther
}

// RefKind tags the type of the external record a movement points at.
type RefKind string

const (
	RefPayroll RefKind = "payroll"
	RefSupply  RefKind = "supply"
)

// ParseRefKind parses a reference kind from its string form.
func ParseRefKind(s string) (RefKind, error) {
	switch RefKind(strings.ToLower(strings.TrimSpace(s))) {
	case RefPayroll:
		return RefPayroll, nil
	case RefSupply:
		return RefSupply, nil
	}

	return "", fmt.Errorf("%w: unknown reference kind %q", ErrInvalidRefKind, s)
}

// Movement is a single ledger entry on a funding account. It is written once
// and never updated; BalanceAfter is the account's running balance snapshot
// taken at insert time.
type Movement struct {
	ID           string
	AccountID    string
	ProjectID    string // optional, empty when not attributed to a project
	Kind         Kind
	Source       Source
	RefKind      RefKind // optional, paired with RefID
	RefID        int64
	Date         Date
	Amount       decimal.Decimal
	Description  string
	BalanceAfter decimal.Decimal
	CreatedAt    time.Time
}

// Validate checks the required fields and enum membership.
func (m *Movement) Validate() error {
	if m.AccountID == "" {
		return fmt.Errorf("%w: account id is required", ErrValidation)
	}

	if !m.Kind.Valid() {
		return fmt.Errorf("%w: kind %q", ErrInvalidKind, m.Kind)
	}

	if !m.Source.Valid() {
		return fmt.Errorf("%w: source %q", ErrInvalidSource, m.Source)
	}

	if m.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}

	if m.Kind != KindAdjustment && m.Amount.IsNegative() {
		return fmt.Errorf("%w: %s amount must be a non-negative magnitude", ErrValidation, m.Kind)
	}

	return nil
}

// SignedAmount is the movement's additive effect on the running balance:
// positive for income, negated for expense, as stored for adjustments.
func (m *Movement) SignedAmount() decimal.Decimal {
	switch m.Kind {
	case KindExpense:
		return m.Amount.Neg()
	default:
		return m.Amount
	}
}

// HasRef reports whether the movement carries a reference to an external record.
func (m *Movement) HasRef() bool {
	return m.RefKind != "" && m.RefID != 0
}

// Less reports whether m comes before other in canonical ledger order:
// date ascending, then id ascending as the same-day tie-break.
func (m *Movement) Less(other *Movement) bool {
	if !m.Date.Equal(other.Date) {
		return m.Date.Before(other.Date)
	}

	return m.ID < other.ID
}
