package events

import "time"

const (
	TypePurchase   = "purchase"
	TypeRedemption = "redemption"
	TypePayout     = "payout"
)

// Event mirrors one committed ledger mutation. Consumers get it after the
// database write, so the stream is informational, not authoritative.
type Event struct {
	Type       string    `json:"type"`
	MemberID   int       `json:"member_id,omitempty"`
	GymID      int       `json:"gym_id,omitempty"`
	Coins      int       `json:"coins"`
	OccurredAt time.Time `json:"occurred_at"`
}
