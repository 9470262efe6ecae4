package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"income", "Expense", " ADJUSTMENT "} {
		if _, err := ParseKind(s); err != nil {
			t.Errorf("expected %q to parse, got %v", s, err)
		}
	}

	if _, err := ParseKind("transfer"); !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
}

func TestParseSource(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"payroll", "supply", "manual", "other"} {
		if _, err := ParseSource(s); err != nil {
			t.Errorf("expected %q to parse, got %v", s, err)
		}
	}

	if _, err := ParseSource("bank"); !errors.Is(err, ErrInvalidSource) {
		t.Fatalf("expected ErrInvalidSource, got %v", err)
	}
}

func TestParseRefKind(t *testing.T) {
	t.Parallel()

	if _, err := ParseRefKind("payroll"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := ParseRefKind("invoice"); !errors.Is(err, ErrInvalidRefKind) {
		t.Fatalf("expected ErrInvalidRefKind, got %v", err)
	}
}

func TestMovementValidate(t *testing.T) {
	t.Parallel()

	valid := Movement{
		ID:        "01A",
		AccountID: "acc-1",
		Kind:      KindIncome,
		Source:    SourceManual,
		Date:      MustDate("2025-01-01"),
		Amount:    decimal.NewFromInt(100),
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid movement, got %v", err)
	}

	t.Run("missing account", func(t *testing.T) {
		m := valid
		m.AccountID = ""
		if err := m.Validate(); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("bad kind", func(t *testing.T) {
		m := valid
		m.Kind = "loan"
		if err := m.Validate(); !errors.Is(err, ErrInvalidKind) {
			t.Fatalf("expected ErrInvalidKind, got %v", err)
		}
	})

	t.Run("bad source", func(t *testing.T) {
		m := valid
		m.Source = "bank"
		if err := m.Validate(); !errors.Is(err, ErrInvalidSource) {
			t.Fatalf("expected ErrInvalidSource, got %v", err)
		}
	})

	t.Run("missing date", func(t *testing.T) {
		m := valid
		m.Date = Date{}
		if err := m.Validate(); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("negative income magnitude", func(t *testing.T) {
		m := valid
		m.Amount = decimal.NewFromInt(-5)
		if err := m.Validate(); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("signed adjustment allowed", func(t *testing.T) {
		m := valid
		m.Kind = KindAdjustment
		m.Amount = decimal.NewFromInt(-5)
		if err := m.Validate(); err != nil {
			t.Fatalf("expected signed adjustment to validate, got %v", err)
		}
	})
}

func TestMovementSignedAmount(t *testing.T) {
	t.Parallel()

	income := Movement{Kind: KindIncome, Amount: decimal.NewFromInt(100)}
	expense := Movement{Kind: KindExpense, Amount: decimal.NewFromInt(40)}
	adjustment := Movement{Kind: KindAdjustment, Amount: decimal.NewFromInt(-10)}

	if !income.SignedAmount().Equal(decimal.NewFromInt(100)) {
		t.Errorf("income effect: got %s", income.SignedAmount())
	}

	if !expense.SignedAmount().Equal(decimal.NewFromInt(-40)) {
		t.Errorf("expense effect: got %s", expense.SignedAmount())
	}

	if !adjustment.SignedAmount().Equal(decimal.NewFromInt(-10)) {
		t.Errorf("adjustment effect: got %s", adjustment.SignedAmount())
	}
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	d, err := ParseAmount("1250.75")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !d.Equal(decimal.RequireFromString("1250.75")) {
		t.Fatalf("expected 1250.75, got %s", d)
	}

	if _, err := ParseAmount(""); !errors.Is(err, ErrMissingAmount) {
		t.Fatalf("expected ErrMissingAmount for empty input, got %v", err)
	}

	if _, err := ParseAmount("abc"); !errors.Is(err, ErrMissingAmount) {
		t.Fatalf("expected ErrMissingAmount for non-numeric input, got %v", err)
	}
}
