package dto

import (
	"github.com/ruival/obracap/internal/domain"
	"github.com/ruival/obracap/internal/usecase"
)

// RecordMovementRequest represents a request to record a manual movement.
// Amount travels as a string so malformed values are rejected here instead
// of surfacing as JSON decode errors.
type RecordMovementRequest struct {
	AccountID   string `json:"account_id"`
	ProjectID   string `json:"project_id,omitempty"`
	Kind        string `json:"kind"`
	Source      string `json:"source,omitempty"`
	Amount      string `json:"amount"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
	RefKind     string `json:"ref_kind,omitempty"`
	RefID       int64  `json:"ref_id,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordMovementRequest) ToUseCaseInput() (usecase.RecordMovementInput, error) {
	kind, err := domain.ParseKind(r.Kind)
	if err != nil {
		return usecase.RecordMovementInput{}, err
	}

	source := domain.SourceManual
	if r.Source != "" {
		source, err = domain.ParseSource(r.Source)
		if err != nil {
			return usecase.RecordMovementInput{}, err
		}
	}

	amount, err := domain.ParseAmount(r.Amount)
	if err != nil {
		return usecase.RecordMovementInput{}, err
	}

	date, err := parseDateOrToday(r.Date)
	if err != nil {
		return usecase.RecordMovementInput{}, err
	}

	var refKind domain.RefKind
	if r.RefKind != "" {
		refKind, err = domain.ParseRefKind(r.RefKind)
		if err != nil {
			return usecase.RecordMovementInput{}, err
		}
	}

	return usecase.RecordMovementInput{
		AccountID:   r.AccountID,
		ProjectID:   r.ProjectID,
		Kind:        kind,
		Source:      source,
		Amount:      amount,
		Date:        date,
		Description: r.Description,
		RefKind:     refKind,
		RefID:       r.RefID,
	}, nil
}

// RecordExpenseRequest represents a request to record an expense draw.
type RecordExpenseRequest struct {
	AccountID   string `json:"account_id"`
	ProjectID   string `json:"project_id,omitempty"`
	Amount      string `json:"amount"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source,omitempty"`
	RefKind     string `json:"ref_kind,omitempty"`
	RefID       int64  `json:"ref_id,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordExpenseRequest) ToUseCaseInput() (usecase.RecordExpenseInput, error) {
	amount, err := domain.ParseAmount(r.Amount)
	if err != nil {
		return usecase.RecordExpenseInput{}, err
	}

	date, err := parseDateOrToday(r.Date)
	if err != nil {
		return usecase.RecordExpenseInput{}, err
	}

	source := domain.SourceManual
	if r.Source != "" {
		source, err = domain.ParseSource(r.Source)
		if err != nil {
			return usecase.RecordExpenseInput{}, err
		}
	}

	var refKind domain.RefKind
	if r.RefKind != "" {
		refKind, err = domain.ParseRefKind(r.RefKind)
		if err != nil {
			return usecase.RecordExpenseInput{}, err
		}
	}

	return usecase.RecordExpenseInput{
		AccountID:   r.AccountID,
		ProjectID:   r.ProjectID,
		Amount:      amount,
		Date:        date,
		Description: r.Description,
		Source:      source,
		RefKind:     refKind,
		RefID:       r.RefID,
	}, nil
}

// RecordFundingRequest represents a request to seed an account with its
// initial funding. The account id comes from the URL.
type RecordFundingRequest struct {
	ProjectID   string `json:"project_id,omitempty"`
	Amount      string `json:"amount"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordFundingRequest) ToUseCaseInput(accountID string) (usecase.RecordInitialFundingInput, error) {
	amount, err := domain.ParseAmount(r.Amount)
	if err != nil {
		return usecase.RecordInitialFundingInput{}, err
	}

	date, err := parseDateOrToday(r.Date)
	if err != nil {
		return usecase.RecordInitialFundingInput{}, err
	}

	return usecase.RecordInitialFundingInput{
		AccountID:   accountID,
		ProjectID:   r.ProjectID,
		Amount:      amount,
		Date:        date,
		Description: r.Description,
	}, nil
}

func parseDateOrToday(s string) (domain.Date, error) {
	if s == "" {
		return domain.Today(), nil
	}

	return domain.ParseDate(s)
}
