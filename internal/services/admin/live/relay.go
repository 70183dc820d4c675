package live

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/louisbranch/userboard/internal/services/admin/userlist"
)

// RefreshChannel is the Redis pub/sub channel shared by admin instances.
const RefreshChannel = "userboard:users:refresh"

// RedisRelay forwards refresh events between admin instances so views
// served by a different instance also re-fetch.
type RedisRelay struct {
	client   *redis.Client
	channel  string
	instance string
	local    Broadcaster
	now      func() time.Time
}

// NewRedisRelay connects to redisURL and relays remote events to local.
func NewRedisRelay(ctx context.Context, redisURL string, local Broadcaster) (*RedisRelay, error) {
	redisURL = strings.TrimSpace(redisURL)
	if redisURL == "" {
		return nil, fmt.Errorf("redis URL is required")
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return newRedisRelay(client, local), nil
}

func newRedisRelay(client *redis.Client, local Broadcaster) *RedisRelay {
	return &RedisRelay{
		client:   client,
		channel:  RefreshChannel,
		instance: uuid.NewString(),
		local:    local,
		now:      time.Now,
	}
}

// Publish sends event to the other instances.
func (r *RedisRelay) Publish(ctx context.Context, event Event) error {
	event.Origin = r.instance
	payload, err := encodeEvent(event)
	if err != nil {
		return err
	}
	if err := r.client.Publish(ctx, r.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish live event: %w", err)
	}
	return nil
}

// Refresher publishes a refresh event. Failures are logged; local clients
// are refreshed by the hub regardless.
func (r *RedisRelay) Refresher() userlist.Refresher {
	return userlist.RefresherFunc(func(ctx context.Context) {
		if err := r.Publish(ctx, RefreshEvent(r.now())); err != nil {
			log.Printf("live relay: %v", err)
		}
	})
}

// Run subscribes to the channel and re-broadcasts remote events locally
// until ctx ends.
func (r *RedisRelay) Run(ctx context.Context) error {
	sub := r.client.Subscribe(ctx, r.channel)
	defer func() { _ = sub.Close() }()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", r.channel, err)
	}
	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			r.deliver(msg.Payload)
		}
	}
}

func (r *RedisRelay) deliver(payload string) {
	event, err := decodeEvent([]byte(payload))
	if err != nil {
		log.Printf("live relay: %v", err)
		return
	}
	if event.Origin == r.instance {
		return
	}
	if r.local != nil {
		r.local.Broadcast(event)
	}
}

// Close closes the Redis client.
func (r *RedisRelay) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}
