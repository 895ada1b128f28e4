// Package notifications provides real-time notification delivery over
// Redis pub/sub and WebSocket connections.
package notifications

import (
	"context"
	"encoding/json"
	"strconv"

	"ripple/internal/middleware"
	"ripple/internal/models"

	"github.com/redis/go-redis/v9"
)

// Notifier publishes notification payloads into Redis channels. A nil
// Redis client turns every publish into a no-op; the stored notification
// row remains the source of truth either way.
type Notifier struct {
	rdb *redis.Client
}

// NewNotifier creates a new Notifier instance using the provided Redis client.
func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// PublishUser sends a payload to a user's channel.
func (n *Notifier) PublishUser(ctx context.Context, userID uint, payload string) error {
	if n.rdb == nil {
		return nil
	}
	return n.rdb.Publish(ctx, UserChannel(userID), payload).Err()
}

// PublishNotification serializes a stored notification and publishes it to
// the recipient's channel. Delivery is best-effort: failures are logged
// and never propagated to the action that created the notification.
func (n *Notifier) PublishNotification(ctx context.Context, notif *models.Notification) {
	if n.rdb == nil {
		return
	}
	payload, err := json.Marshal(notif)
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "marshal notification", "error", err)
		return
	}
	if err := n.PublishUser(ctx, notif.RecipientID, string(payload)); err != nil {
		middleware.Logger.WarnContext(ctx, "publish notification",
			"recipient_id", notif.RecipientID, "error", err)
	}
}

// StartPatternSubscriber subscribes to the `notifications:user:*` pattern
// and calls onMessage for each incoming message. The subscription lives
// until ctx is cancelled.
func (n *Notifier) StartPatternSubscriber(
	ctx context.Context, onMessage func(channel string, payload string),
) error {
	if n.rdb == nil {
		return nil
	}
	sub := n.rdb.PSubscribe(ctx, "notifications:user:*")
	ch := sub.Channel()

	go func() {
		defer func() { _ = sub.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				onMessage(msg.Channel, msg.Payload)
			}
		}
	}()

	return nil
}

// UserChannel derives the Redis channel name for a user.
func UserChannel(userID uint) string {
	return "notifications:user:" + strconv.FormatUint(uint64(userID), 10)
}
