package entity

import "github.com/google/uuid"

// TicketStatus is the provider-reported outcome for one token.
type TicketStatus string

const (
	TicketStatusOK    TicketStatus = "ok"
	TicketStatusError TicketStatus = "error"
)

// Provider error detail meaning the token will never work again.
const TicketErrorDeviceNotRegistered = "DeviceNotRegistered"

// DispatchTicket is the outcome of sending one push to one token.
// Tickets are logged and discarded, never stored.
type DispatchTicket struct {
	Token       string
	UserID      uuid.UUID
	DeviceID    string
	Status      TicketStatus
	ID          string // Provider receipt ID when accepted.
	Message     string
	ErrorDetail string
}

// IsUnregistered reports whether the provider rejected the token permanently.
func (t DispatchTicket) IsUnregistered() bool {
	return t.Status == TicketStatusError && t.ErrorDetail == TicketErrorDeviceNotRegistered
}

// DispatchSummary counts what happened during one dispatch. It is
// informational only; dispatch never fails its caller.
type DispatchSummary struct {
	Requested int `json:"requested"`
	Invalid   int `json:"invalid"`
	Batches   int `json:"batches"`
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
	Pruned    int `json:"pruned"`
}
