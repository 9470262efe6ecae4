package domain

// Event types
const (
	EventTypeMovementRecorded = "movement.recorded"
)

// Aggregate types
const (
	AggregateTypeMovement = "movement"
)

// MovementRecordedEvent payload
type MovementRecordedEvent struct {
	MovementID   string `json:"movement_id"`
	AccountID    string `json:"account_id"`
	ProjectID    string `json:"project_id,omitempty"`
	Kind         string `json:"kind"`
	Source       string `json:"source"`
	Amount       string `json:"amount"`
	BalanceAfter string `json:"balance_after"`
	Date         string `json:"date"`
}
