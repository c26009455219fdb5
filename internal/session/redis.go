package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const stateKey = "speechwright:session"

// Redis keeps the session in redis so the server can restart (or run more
// than one replica) without dropping the working state. Entries expire
// after the configured TTL; nothing here is long-term persistence.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(url string, ttl time.Duration) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Redis{client: redis.NewClient(opt), ttl: ttl}, nil
}

func (r *Redis) Get(ctx context.Context) (State, error) {
	data, err := r.client.Get(ctx, stateKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return NewState(), nil
	}
	if err != nil {
		return State{}, err
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, err
	}
	return st, nil
}

func (r *Redis) Put(ctx context.Context, st State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, stateKey, data, r.ttl).Err()
}

func (r *Redis) Reset(ctx context.Context) error {
	return r.client.Del(ctx, stateKey).Err()
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error { return r.client.Close() }
