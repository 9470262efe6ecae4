package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ruival/obracap/internal/domain"
)

func TestMovementFromDomain(t *testing.T) {
	m := &domain.Movement{
		ID:           "01A",
		AccountID:    "acc-1",
		Kind:         domain.KindExpense,
		Source:       domain.SourceSupply,
		RefKind:      domain.RefSupply,
		RefID:        7,
		Date:         domain.MustDate("2025-03-01"),
		Amount:       decimal.NewFromInt(300),
		BalanceAfter: decimal.NewFromInt(700),
		CreatedAt:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	resp := MovementFromDomain(m)

	if resp.Kind != "expense" || resp.Source != "supply" || resp.RefID != 7 {
		t.Fatalf("unexpected response: %+v", resp)
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"date":"2025-03-01"`) {
		t.Fatalf("expected ISO date in JSON, got %s", data)
	}
}

func TestMovementResponseOmitsEmptyOptionalFields(t *testing.T) {
	m := &domain.Movement{
		ID:        "01A",
		AccountID: "acc-1",
		Kind:      domain.KindIncome,
		Source:    domain.SourceManual,
		Date:      domain.MustDate("2025-03-01"),
		Amount:    decimal.NewFromInt(100),
	}

	data, err := json.Marshal(MovementFromDomain(m))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	for _, field := range []string{"project_id", "ref_kind", "ref_id", "description"} {
		if strings.Contains(string(data), field) {
			t.Fatalf("expected %s to be omitted, got %s", field, data)
		}
	}
}
