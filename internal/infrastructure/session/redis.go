package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fiberops/circuitdesk/internal/core/domain"
	"github.com/fiberops/circuitdesk/internal/core/ports"
)

const connectTimeout = 5 * time.Second

// RedisStore keeps the session in Redis so the consoles of one ops desk
// share a sign-in. Key format: circuitdesk:session:<desk>. Same contract as
// FileStore: a payload that does not unmarshal reads as logged out.
type RedisStore struct {
	client *redis.Client
	key    string
}

var _ ports.SessionStore = (*RedisStore)(nil)

// RedisConfig captures the settings for the shared session backend.
type RedisConfig struct {
	Addr string
	DB   int
	Desk string
}

// ConnectRedis initialises the store and validates connectivity with a ping.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisStore{
		client: client,
		key:    "circuitdesk:session:" + cfg.Desk,
	}, nil
}

func (s *RedisStore) Save(sess domain.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	// No TTL: sessions live until explicit sign-out.
	if err := s.client.Set(context.Background(), s.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *RedisStore) Load() (domain.Session, bool) {
	raw, err := s.client.Get(context.Background(), s.key).Bytes()
	if err != nil {
		return domain.Session{}, false
	}
	var sess domain.Session
	if json.Unmarshal(raw, &sess) != nil || sess.IsZero() {
		return domain.Session{}, false
	}
	return sess, true
}

func (s *RedisStore) Clear() error {
	if err := s.client.Del(context.Background(), s.key).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error { return s.client.Close() }
