package domain

import "github.com/shopspring/decimal"

// PayrollLine is the descriptive record behind a payroll reference, as
// returned by the payroll collaborator.
type PayrollLine struct {
	ID       int64
	Employee string
	Week     string
	Amount   decimal.Decimal
}

// SupplyPurchase is the descriptive record behind a supply reference, as
// returned by the supply collaborator.
type SupplyPurchase struct {
	ID       int64
	Supplier string
	Category string
	Amount   decimal.Decimal
}

// Reference is the resolved, display-only view of a movement's external
// source record. It never participates in balance math.
type Reference struct {
	Kind         RefKind         `json:"kind"`
	ID           int64           `json:"id"`
	Counterparty string          `json:"counterparty"`
	Detail       string          `json:"detail,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
}
