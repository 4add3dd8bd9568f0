package pipeline

import (
	"context"

	"github.com/rs/zerolog"
)

// Notifier delivers a message to a notification channel.
type Notifier interface {
	Notify(ctx context.Context, channel, message string) error
}

// NopNotifier discards notifications. Used when no delivery backend is
// configured.
type NopNotifier struct{}

// Notify Implementation
func (NopNotifier) Notify(ctx context.Context, channel, message string) error {
	return nil
}

// Announce sends the plan summary to the branch's notification channel.
// Delivery failures are logged and swallowed: notification is best effort and
// must never fail a run.
func Announce(ctx context.Context, notifier Notifier, plan Plan) {
	channel := plan.Classification.SlackChannel
	if err := notifier.Notify(ctx, channel, plan.Summary()); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("channel", channel).Msg("Unable to deliver pipeline notification")
	}
}
