package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKey is the Redis key holding the slot.
const DefaultKey = "dashboard:feedback"

// Redis stores the slot under one key with SET ... EX, so expiry is enforced by
// the server and every dashboard process sees the same message.
type Redis struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	now    func() time.Time
}

// NewRedis constructs a Redis-backed channel.
func NewRedis(client *redis.Client, key string, ttl time.Duration) *Redis {
	if key == "" {
		key = DefaultKey
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: client, key: key, ttl: ttl, now: time.Now}
}

func (r *Redis) Publish(ctx context.Context, severity Severity, text string) error {
	if !severity.Valid() {
		return ErrInvalidSeverity
	}
	shown := r.now()
	data, err := json.Marshal(Message{Severity: severity, Text: text, ShownAt: shown, ExpiresAt: shown.Add(r.ttl)})
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("feedback: publish: %w", err)
	}
	return nil
}

func (r *Redis) Current(ctx context.Context) (*Message, error) {
	payload, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("feedback: current: %w", err)
	}
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil, fmt.Errorf("feedback: decode: %w", err)
	}
	return &msg, nil
}

func (r *Redis) Dismiss(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("feedback: dismiss: %w", err)
	}
	return nil
}
