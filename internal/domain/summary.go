package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Summary is the deterministic fold of a movement set: running totals per
// kind and the resulting balance. InitialAmount is the amount of the first
// income movement in canonical order, a reporting convention only.
type Summary struct {
	InitialAmount   decimal.Decimal `json:"initial_amount"`
	TotalIncome     decimal.Decimal `json:"total_income"`
	TotalExpense    decimal.Decimal `json:"total_expense"`
	TotalAdjustment decimal.Decimal `json:"total_adjustment"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
	MovementCount   int             `json:"movement_count"`
}

// ProjectSummary is the per-project variant of Summary. ProjectName is
// resolved by the caller through the project collaborator; it stays empty
// here.
type ProjectSummary struct {
	ProjectID       string          `json:"project_id"`
	ProjectName     string          `json:"project_name,omitempty"`
	TotalIncome     decimal.Decimal `json:"total_income"`
	TotalExpense    decimal.Decimal `json:"total_expense"`
	TotalAdjustment decimal.Decimal `json:"total_adjustment"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
	MovementCount   int             `json:"movement_count"`
}

// SortCanonical sorts movements in place by (date ascending, id ascending),
// the order balances are computed in.
func SortCanonical(movements []*Movement) {
	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].Less(movements[j])
	})
}

// Summarize folds a movement set into a Summary. The input is re-sorted
// internally into canonical order, so callers may hand it over in any order.
// Pure: no I/O, the input slice contents are not modified.
func Summarize(movements []*Movement) Summary {
	ordered := make([]*Movement, len(movements))
	copy(ordered, movements)
	SortCanonical(ordered)

	s := Summary{
		InitialAmount:   decimal.Zero,
		TotalIncome:     decimal.Zero,
		TotalExpense:    decimal.Zero,
		TotalAdjustment: decimal.Zero,
		CurrentBalance:  decimal.Zero,
	}

	seenIncome := false
	for _, m := range ordered {
		switch m.Kind {
		case KindIncome:
			s.TotalIncome = s.TotalIncome.Add(m.Amount)
			if !seenIncome {
				s.InitialAmount = m.Amount
				seenIncome = true
			}
		case KindExpense:
			s.TotalExpense = s.TotalExpense.Add(m.Amount)
		case KindAdjustment:
			s.TotalAdjustment = s.TotalAdjustment.Add(m.Amount)
		}

		s.CurrentBalance = s.CurrentBalance.Add(m.SignedAmount())
		s.MovementCount++
	}

	return s
}

// SummarizeByProject groups movements by project id and applies the same
// fold per group. Movements without a project form their own group under the
// empty id. Group order is unspecified; callers needing determinism sort the
// result themselves.
func SummarizeByProject(movements []*Movement) []ProjectSummary {
	groups := make(map[string][]*Movement)
	for _, m := range movements {
		groups[m.ProjectID] = append(groups[m.ProjectID], m)
	}

	result := make([]ProjectSummary, 0, len(groups))
	for projectID, group := range groups {
		s := Summarize(group)
		result = append(result, ProjectSummary{
			ProjectID:       projectID,
			TotalIncome:     s.TotalIncome,
			TotalExpense:    s.TotalExpense,
			TotalAdjustment: s.TotalAdjustment,
			CurrentBalance:  s.CurrentBalance,
			MovementCount:   s.MovementCount,
		})
	}

	return result
}
