package interfaces

import "context"

// INotifier abstracts the external messaging bot API (e.g. Telegram).
//
// Sends are best-effort by contract: callers collect per-recipient results
// and never let a delivery failure escalate past the dispatch boundary.
type INotifier interface {
	Send(ctx context.Context, chatID string, text string) error
}
