package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ruival/obracap/internal/domain"
)

// MovementResponse represents a movement in API responses.
type MovementResponse struct {
	ID           string          `json:"id"`
	AccountID    string          `json:"account_id"`
	ProjectID    string          `json:"project_id,omitempty"`
	Kind         string          `json:"kind"`
	Source       string          `json:"source"`
	RefKind      string          `json:"ref_kind,omitempty"`
	RefID        int64           `json:"ref_id,omitempty"`
	Date         domain.Date     `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description,omitempty"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	CreatedAt    time.Time       `json:"created_at"`
}

// MovementFromDomain converts a domain movement to a response.
func MovementFromDomain(m *domain.Movement) *MovementResponse {
	return &MovementResponse{
		ID:           m.ID,
		AccountID:    m.AccountID,
		ProjectID:    m.ProjectID,
		Kind:         string(m.Kind),
		Source:       string(m.Source),
		RefKind:      string(m.RefKind),
		RefID:        m.RefID,
		Date:         m.Date,
		Amount:       m.Amount,
		Description:  m.Description,
		BalanceAfter: m.BalanceAfter,
		CreatedAt:    m.CreatedAt,
	}
}

// MovementsFromDomain converts domain movements to responses.
func MovementsFromDomain(movements []*domain.Movement) []*MovementResponse {
	result := make([]*MovementResponse, len(movements))
	for i, m := range movements {
		result[i] = MovementFromDomain(m)
	}
	return result
}

// MovementListResponse is the envelope for movement listings.
type MovementListResponse struct {
	Movements []*MovementResponse `json:"movements"`
	Count     int64               `json:"count"`
}

// MovementDetailResponse is a single movement with its resolved external
// reference, when one exists and could be resolved.
type MovementDetailResponse struct {
	MovementResponse

	Reference *domain.Reference `json:"reference,omitempty"`
}

// AccountSummaryResponse wraps a fold result with the account it covers.
type AccountSummaryResponse struct {
	AccountID string         `json:"account_id"`
	Summary   domain.Summary `json:"summary"`
}

// ProjectCapitalResponse is the envelope for per-project capital reports.
type ProjectCapitalResponse struct {
	Projects []domain.ProjectSummary `json:"projects"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
