package domain

import "time"

// Selection change actions.
const (
	ActionUpdate = "update"
	ActionReset  = "reset"
)

// SelectionEvent records one accepted selection change for downstream
// usage analytics.
type SelectionEvent struct {
	SessionID  string    `json:"session_id"`
	Action     string    `json:"action"`
	Selection  Selection `json:"selection"`
	OccurredAt time.Time `json:"occurred_at"`
}
