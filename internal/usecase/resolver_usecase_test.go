package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ruival/obracap/internal/domain"
	"github.com/ruival/obracap/internal/usecase"
	"github.com/ruival/obracap/internal/usecase/mocks"
)

func TestResolver_PayrollReference(t *testing.T) {
	payroll := mocks.NewMockPayrollDirectory(map[int64]*domain.PayrollLine{
		7: {ID: 7, Employee: "M. Herrera", Week: "2025-W03", Amount: decimal.NewFromInt(850)},
	})
	supply := mocks.NewMockSupplyDirectory(nil)

	r := usecase.NewReferenceResolver(payroll, supply, nil, zerolog.Nop())

	ref, err := r.Resolve(context.Background(), domain.RefPayroll, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ref == nil {
		t.Fatal("expected a resolved reference")
	}

	if ref.Kind != domain.RefPayroll || ref.Counterparty != "M. Herrera" || ref.Detail != "2025-W03" {
		t.Errorf("unexpected reference: %+v", ref)
	}
}

func TestResolver_SupplyReference(t *testing.T) {
	payroll := mocks.NewMockPayrollDirectory(nil)
	supply := mocks.NewMockSupplyDirectory(map[int64]*domain.SupplyPurchase{
		42: {ID: 42, Supplier: "Ferretería Central", Category: "cement", Amount: decimal.NewFromInt(300)},
	})

	r := usecase.NewReferenceResolver(payroll, supply, nil, zerolog.Nop())

	ref, err := r.Resolve(context.Background(), domain.RefSupply, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ref == nil || ref.Counterparty != "Ferretería Central" {
		t.Fatalf("unexpected reference: %+v", ref)
	}
}

func TestResolver_MissingTargetReturnsNil(t *testing.T) {
	r := usecase.NewReferenceResolver(
		mocks.NewMockPayrollDirectory(nil),
		mocks.NewMockSupplyDirectory(nil),
		nil,
		zerolog.Nop(),
	)

	ref, err := r.Resolve(context.Background(), domain.RefPayroll, 99999)
	if err != nil {
		t.Fatalf("missing target must not be an error, got %v", err)
	}

	if ref != nil {
		t.Fatalf("expected nil reference, got %+v", ref)
	}
}

func TestResolver_AbsentReferenceReturnsNil(t *testing.T) {
	r := usecase.NewReferenceResolver(
		mocks.NewMockPayrollDirectory(nil),
		mocks.NewMockSupplyDirectory(nil),
		nil,
		zerolog.Nop(),
	)

	ref, err := r.Resolve(context.Background(), "", 0)
	if err != nil || ref != nil {
		t.Fatalf("expected (nil, nil) for absent reference, got (%+v, %v)", ref, err)
	}
}

func TestResolver_CollaboratorFailureIsSoft(t *testing.T) {
	payroll := mocks.NewMockPayrollDirectory(nil)
	payroll.PayrollLineFunc = func(ctx context.Context, id int64) (*domain.PayrollLine, error) {
		return nil, errors.New("payroll service unavailable")
	}

	r := usecase.NewReferenceResolver(payroll, mocks.NewMockSupplyDirectory(nil), nil, zerolog.Nop())

	ref, err := r.Resolve(context.Background(), domain.RefPayroll, 1)
	if err != nil {
		t.Fatalf("collaborator failure must resolve soft, got %v", err)
	}

	if ref != nil {
		t.Fatalf("expected nil reference on failure, got %+v", ref)
	}
}

func TestResolver_ResolveMovement(t *testing.T) {
	supply := mocks.NewMockSupplyDirectory(map[int64]*domain.SupplyPurchase{
		42: {ID: 42, Supplier: "Ferretería Central", Category: "cement", Amount: decimal.NewFromInt(300)},
	})
	r := usecase.NewReferenceResolver(mocks.NewMockPayrollDirectory(nil), supply, nil, zerolog.Nop())

	withRef := &domain.Movement{RefKind: domain.RefSupply, RefID: 42}
	if ref := r.ResolveMovement(context.Background(), withRef); ref == nil || ref.ID != 42 {
		t.Fatalf("expected resolved reference, got %+v", ref)
	}

	withoutRef := &domain.Movement{}
	if ref := r.ResolveMovement(context.Background(), withoutRef); ref != nil {
		t.Fatalf("expected nil for movement without reference, got %+v", ref)
	}
}
