package port

import "context"

// AlertNotifier pushes a frame-level alert message to an external
// channel.
type AlertNotifier interface {
	Notify(ctx context.Context, message string) error
}
