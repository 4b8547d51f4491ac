package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/heliconnect/client-api/config"
	"github.com/heliconnect/client-api/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
	sessionTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL, sessionTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
		sessionTTL: sessionTTL,
	}
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.flightsTTL).Err()
}

// CreateSession stores the session under its token with the configured
// TTL. Expiry in redis is the session expiry; no separate sweep needed.
func (c *RedisCache) CreateSession(ctx context.Context, session *domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, sessionKey(session.Token), payload, c.sessionTTL).Err()
}

// GetSession returns nil without error for unknown or expired tokens;
// an absent session is not a failure, just an unauthenticated visitor.
func (c *RedisCache) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	data, err := c.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *RedisCache) DeleteSession(ctx context.Context, token string) error {
	return c.client.Del(ctx, sessionKey(token)).Err()
}

func flightsKey() string {
	return "cache:flights"
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}
