package walletdash

import (
	"time"

	"go.uber.org/zap"
)

// Entry describes one request/response pair against the WalletDash API.
type Entry struct {
	Timestamp time.Time     `json:"timestamp"`
	Method    string        `json:"method"`
	Endpoint  string        `json:"endpoint"`
	Status    int           `json:"status"` // 0 when the request never reached the server
	Latency   time.Duration `json:"latency"`
	Err       string        `json:"error,omitempty"`
}

// Observer receives an Entry for every call the client makes. Reporting is
// best-effort: observers must not block and cannot fail the underlying call.
type Observer interface {
	ObserveRequest(Entry)
}

// NopObserver discards all entries.
type NopObserver struct{}

func (NopObserver) ObserveRequest(Entry) {}

// ZapObserver writes each entry to a zap logger.
type ZapObserver struct {
	Log *zap.Logger
}

func (o ZapObserver) ObserveRequest(e Entry) {
	fields := []zap.Field{
		zap.String("method", e.Method),
		zap.String("endpoint", e.Endpoint),
		zap.Int("status", e.Status),
		zap.Duration("latency", e.Latency),
	}
	if e.Err != "" {
		o.Log.Warn("walletdash request failed", append(fields, zap.String("error", e.Err))...)
		return
	}
	o.Log.Info("walletdash request", fields...)
}
