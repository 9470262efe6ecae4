package dto

import (
	"errors"
	"testing"

	"github.com/ruival/obracap/internal/domain"
)

func TestRecordMovementRequest_ToUseCaseInput(t *testing.T) {
	req := RecordMovementRequest{
		AccountID: "acc-1",
		ProjectID: "proj-7",
		Kind:      "income",
		Amount:    "1500.50",
		Date:      "2025-03-01",
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if input.Kind != domain.KindIncome {
		t.Fatalf("expected income, got %s", input.Kind)
	}
	if input.Source != domain.SourceManual {
		t.Fatalf("expected default source manual, got %s", input.Source)
	}
	if input.Amount.String() != "1500.5" {
		t.Fatalf("unexpected amount: %s", input.Amount)
	}
	if input.Date.String() != "2025-03-01" {
		t.Fatalf("unexpected date: %s", input.Date)
	}
}

func TestRecordMovementRequest_RejectsNonNumericAmount(t *testing.T) {
	req := RecordMovementRequest{
		AccountID: "acc-1",
		Kind:      "expense",
		Amount:    "mil quinientos",
	}

	_, err := req.ToUseCaseInput()
	if !errors.Is(err, domain.ErrMissingAmount) {
		t.Fatalf("expected ErrMissingAmount, got %v", err)
	}
}

func TestRecordMovementRequest_RejectsUnknownKind(t *testing.T) {
	req := RecordMovementRequest{
		AccountID: "acc-1",
		Kind:      "loan",
		Amount:    "10",
	}

	_, err := req.ToUseCaseInput()
	if !errors.Is(err, domain.ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
}

func TestRecordExpenseRequest_ToUseCaseInput(t *testing.T) {
	req := RecordExpenseRequest{
		AccountID: "acc-1",
		Amount:    "300",
		Source:    "payroll",
		RefKind:   "payroll",
		RefID:     42,
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if input.Source != domain.SourcePayroll || input.RefKind != domain.RefPayroll || input.RefID != 42 {
		t.Fatalf("unexpected input: %+v", input)
	}
	if input.Date.IsZero() {
		t.Fatalf("expected date to default to today")
	}
}

func TestRecordFundingRequest_ToUseCaseInput(t *testing.T) {
	req := RecordFundingRequest{
		Amount: "100000",
		Date:   "2025-01-15",
	}

	input, err := req.ToUseCaseInput("acc-9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if input.AccountID != "acc-9" {
		t.Fatalf("expected account from URL, got %s", input.AccountID)
	}
}

func TestRecordFundingRequest_RejectsBadDate(t *testing.T) {
	req := RecordFundingRequest{
		Amount: "100",
		Date:   "15/01/2025",
	}

	if _, err := req.ToUseCaseInput("acc-9"); err == nil {
		t.Fatalf("expected date parse error")
	}
}
