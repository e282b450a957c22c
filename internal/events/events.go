package events

import "context"

// Streams
const (
	StreamWallet   = "events:wallet"
	StreamPurchase = "events:purchase"
)

// Event types
const (
	EventWalletReady       = "wallet_ready"
	EventWalletClaimed     = "wallet_claimed"
	EventPurchaseCompleted = "purchase_completed"
)

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
