package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ruival/obracap/internal/domain"
)

// ProjectDirectory is a static project name lookup for development.
type ProjectDirectory struct {
	names map[string]string
}

// NewProjectDirectory creates a directory over a fixed id-to-name map.
func NewProjectDirectory(names map[string]string) *ProjectDirectory {
	if names == nil {
		names = make(map[string]string)
	}

	return &ProjectDirectory{names: names}
}

// ProjectName returns the project's display name, or "" when unknown.
func (d *ProjectDirectory) ProjectName(_ context.Context, projectID string) (string, error) {
	return d.names[projectID], nil
}

// PayrollDirectory is a static payroll line lookup for development.
type PayrollDirectory struct {
	lines map[int64]*domain.PayrollLine
}

// NewPayrollDirectory creates an empty payroll directory.
func NewPayrollDirectory() *PayrollDirectory {
	return &PayrollDirectory{lines: make(map[int64]*domain.PayrollLine)}
}

// Add registers a payroll line.
func (d *PayrollDirectory) Add(id int64, employee, week string, amount decimal.Decimal) {
	d.lines[id] = &domain.PayrollLine{ID: id, Employee: employee, Week: week, Amount: amount}
}

// PayrollLine returns the payroll line, or (nil, nil) when absent.
func (d *PayrollDirectory) PayrollLine(_ context.Context, id int64) (*domain.PayrollLine, error) {
	line, ok := d.lines[id]
	if !ok {
		return nil, nil
	}

	out := *line

	return &out, nil
}

// SupplyDirectory is a static supply purchase lookup for development.
type SupplyDirectory struct {
	purchases map[int64]*domain.SupplyPurchase
}

// NewSupplyDirectory creates an empty supply directory.
func NewSupplyDirectory() *SupplyDirectory {
	return &SupplyDirectory{purchases: make(map[int64]*domain.SupplyPurchase)}
}

// Add registers a supply purchase.
func (d *SupplyDirectory) Add(id int64, supplier, category string, amount decimal.Decimal) {
	d.purchases[id] = &domain.SupplyPurchase{ID: id, Supplier: supplier, Category: category, Amount: amount}
}

// SupplyPurchase returns the purchase, or (nil, nil) when absent.
func (d *SupplyDirectory) SupplyPurchase(_ context.Context, id int64) (*domain.SupplyPurchase, error) {
	p, ok := d.purchases[id]
	if !ok {
		return nil, nil
	}

	out := *p

	return &out, nil
}
