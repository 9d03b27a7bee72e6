package workers

import (
	"context"
	"log/slog"
	"time"

	"pingly/contract"
	"pingly/errors"
	"pingly/feed"
)

// FeedPump owns the one underlying change-feed connection of a session.
// It opens the source, pushes every delivered event into the bus in
// arrival order, and reconnects on transport loss. After each
// reconnect it raises a gap notice so consumers re-run their bulk
// loads instead of trusting ingest alone to have caught everything.
type FeedPump struct {
	log           *slog.Logger
	source        contract.IFeedSource
	bus           *feed.Bus
	userID        string
	reconnectWait time.Duration
	// maxAttempts bounds consecutive failed connects before the pump
	// gives up and surfaces a transport error to the supervisor.
	// Zero means retry forever.
	maxAttempts int
}

func NewFeedPump(log *slog.Logger, source contract.IFeedSource, bus *feed.Bus,
	userID string, reconnectWait time.Duration, maxAttempts int) *FeedPump {
	return &FeedPump{
		log:           log,
		source:        source,
		bus:           bus,
		userID:        userID,
		reconnectWait: reconnectWait,
		maxAttempts:   maxAttempts,
	}
}

func (w *FeedPump) Run(ctx context.Context) error {
	connected := false
	attempts := 0

	for {
		if ctx.Err() != nil {
			return nil
		}

		events, err := w.source.Open(ctx, w.userID)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			attempts++
			if w.maxAttempts > 0 && attempts >= w.maxAttempts {
				// Sync is degraded; the supervisor decides whether to
				// keep restarting us.
				return errors.NewTransport("feed subscribe", err)
			}
			w.log.Warn("feed connect failed, retrying",
				"user_id", w.userID, "attempt", attempts, "error", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(w.reconnectWait):
			}
			continue
		}
		attempts = 0

		if connected {
			// Anything committed while we were away never reached us.
			w.bus.NotifyGap(ctx)
		}
		connected = true

		for evt := range events {
			w.bus.Publish(ctx, evt)
		}
		if ctx.Err() != nil {
			return nil
		}
		w.log.Warn("feed connection lost, reconnecting", "user_id", w.userID)
	}
}
