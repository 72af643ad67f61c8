// Package cache publishes game action records to Redis for external
// listeners (toasts, activity feeds). Nothing is read back; the records are
// advisory notifications, not game state.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultChannel is the pub/sub channel used when none is configured.
const DefaultChannel = "birds:events"

// GameActionRecord is one entry of the action stream.
type GameActionRecord struct {
	GameID        uuid.UUID              `json:"gameId"`
	ActionIndex   int                    `json:"actionIndex"` // Records may arrive out of order; consumers sort by this.
	ActorPlayerID int                    `json:"actorPlayerId,omitempty"` // 0 for game-level events.
	ActionType    string                 `json:"actionType"`
	ActionPayload map[string]interface{} `json:"actionPayload,omitempty"`
	Timestamp     int64                  `json:"timestamp"` // Unix milliseconds.
}

// Publisher sends records to a Redis pub/sub channel.
type Publisher struct {
	rdb     redis.UniversalClient
	channel string
}

// NewPublisher wraps an existing client. An empty channel selects DefaultChannel.
func NewPublisher(rdb redis.UniversalClient, channel string) *Publisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Publisher{rdb: rdb, channel: channel}
}

// Channel returns the channel records are published on.
func (p *Publisher) Channel() string { return p.channel }

// Connect opens a client for addr and verifies it with a PING.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 2 * time.Second,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect redis %s: %w", addr, err)
	}
	return rdb, nil
}

// PublishGameAction encodes rec as JSON and publishes it.
func (p *Publisher) PublishGameAction(ctx context.Context, rec GameActionRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal action %d: %w", rec.ActionIndex, err)
	}
	if err := p.rdb.Publish(ctx, p.channel, b).Err(); err != nil {
		return fmt.Errorf("publish action %d: %w", rec.ActionIndex, err)
	}
	return nil
}
