package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ruival/obracap/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"movement not found", domain.ErrMovementNotFound, http.StatusNotFound},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"invalid kind", domain.ErrInvalidKind, http.StatusBadRequest},
		{"invalid source", domain.ErrInvalidSource, http.StatusBadRequest},
		{"invalid ref kind", domain.ErrInvalidRefKind, http.StatusBadRequest},
		{"missing amount", domain.ErrMissingAmount, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestParseFilter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/movements?account_id=acc-1&project_id=proj-7&kind=expense&source=supply&from=2025-01-01&to=2025-03-31", nil)

	filter, err := parseFilter(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filter.AccountID != "acc-1" || filter.ProjectID != "proj-7" {
		t.Fatalf("unexpected filter: %+v", filter)
	}
	if filter.Kind != domain.KindExpense || filter.Source != domain.SourceSupply {
		t.Fatalf("unexpected enums: %+v", filter)
	}
	if filter.DateFrom.String() != "2025-01-01" || filter.DateTo.String() != "2025-03-31" {
		t.Fatalf("unexpected range: %+v", filter)
	}
}

func TestParseFilter_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/movements", nil)

	filter, err := parseFilter(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filter.IsZero() {
		t.Fatalf("expected zero filter, got %+v", filter)
	}
}

func TestParseFilter_BadEnum(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/movements?source=lottery", nil)

	if _, err := parseFilter(req); !errors.Is(err, domain.ErrInvalidSource) {
		t.Fatalf("expected ErrInvalidSource, got %v", err)
	}
}
