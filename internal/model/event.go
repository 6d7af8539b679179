package model

import (
	"time"

	"github.com/google/uuid"
)

// ProviderEvent is a webhook delivery from the checkout provider.
type ProviderEvent struct {
	ID         uuid.UUID
	Type       string
	OrderID    string
	ReceivedAt time.Time
	Payload    map[string]any
}
