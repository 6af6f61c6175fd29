package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"moviedb-bot/internal/model"
)

const keyPrefix = "moviedb-bot:nav:"

// RedisClient keeps each chat's navigation state so paging buttons keep
// working across restarts. Entries expire after stateTTL of inactivity.
type RedisClient struct {
	client   *redis.Client
	stateTTL time.Duration
}

func NewRedisClient(addr string, password string, db int, stateTTL time.Duration) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}

	return &RedisClient{client: client, stateTTL: stateTTL}, nil
}

func stateKey(chatID int64) string {
	return keyPrefix + strconv.FormatInt(chatID, 10)
}

func (r *RedisClient) SaveState(ctx context.Context, chatID int64, state model.NavState) error {
	data, err := json.Marshal(state)
	if err != nil {
		slog.Error("Error marshaling state", "error", err)
		return err
	}
	return r.client.Set(ctx, stateKey(chatID), data, r.stateTTL).Err()
}

// GetState returns nil, nil when the chat has no stored state.
func (r *RedisClient) GetState(ctx context.Context, chatID int64) (*model.NavState, error) {
	data, err := r.client.Get(ctx, stateKey(chatID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		slog.Error("Error getting state", "chat_id", chatID, "error", err)
		return nil, err
	}

	var state model.NavState
	if err := json.Unmarshal(data, &state); err != nil {
		slog.Error("Error unmarshaling state", "chat_id", chatID, "error", err)
		return nil, err
	}
	return &state, nil
}

func (r *RedisClient) DeleteState(ctx context.Context, chatID int64) error {
	return r.client.Del(ctx, stateKey(chatID)).Err()
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}
