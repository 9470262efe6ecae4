package domain

// Filter selects movements by equality on account, project, kind and source,
// and by inclusive date range. Zero-valued fields impose no constraint; set
// fields combine with AND semantics.
type Filter struct {
	AccountID string
	ProjectID string
	Kind      Kind
	Source    Source
	DateFrom  Date
	DateTo    Date
}

// Matches reports whether the movement satisfies every set filter field.
func (f Filter) Matches(m *Movement) bool {
	if f.AccountID != "" && m.AccountID != f.AccountID {
		return false
	}

	if f.ProjectID != "" && m.ProjectID != f.ProjectID {
		return false
	}

	if f.Kind != "" && m.Kind != f.Kind {
		return false
	}

	if f.Source != "" && m.Source != f.Source {
		return false
	}

	if !f.DateFrom.IsZero() && m.Date.Before(f.DateFrom) {
		return false
	}

	if !f.DateTo.IsZero() && m.Date.After(f.DateTo) {
		return false
	}

	return true
}

// IsZero reports whether no filter field is set.
func (f Filter) IsZero() bool {
	return f == Filter{}
}
