// README: Live-update fan-out for shared lists over Redis pub/sub.
package list

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"

	"wut2pack/internal/types"
)

// Notifier broadcasts change events to share-link viewers. Publishing is
// best-effort: a failed publish never fails the mutation that triggered it.
type Notifier interface {
	Publish(ctx context.Context, ev ChangeEvent)
}

// RedisNotifier fans events out on a per-share channel.
type RedisNotifier struct {
	redis *redis.Client
}

func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{redis: client}
}

const channelPrefix = "list_updates:"

func Channel(shareID types.ID) string {
	return channelPrefix + string(shareID)
}

func (n *RedisNotifier) Publish(ctx context.Context, ev ChangeEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		log.Printf("list notifier: marshal event: %v", err)
		return
	}
	if err := n.redis.Publish(ctx, Channel(ev.ShareID), payload).Err(); err != nil {
		log.Printf("list notifier: publish %s: %v", ev.Kind, err)
	}
}

// Subscribe returns a channel of raw event payloads for one shared list. The
// returned cancel func must be called when the viewer disconnects.
func (n *RedisNotifier) Subscribe(ctx context.Context, shareID types.ID) (<-chan string, func()) {
	sub := n.redis.Subscribe(ctx, Channel(shareID))
	out := make(chan string)
	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			select {
			case out <- msg.Payload:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, func() { _ = sub.Close() }
}
