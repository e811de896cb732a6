package ratelimit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNoSalt is returned when the secret salt is missing. Unsalted hashes
// would make identifiers guessable, so there is no fallback: the deployment
// must be fixed. The error text is distinct so it stands out in logs and
// alerts.
var ErrNoSalt = errors.New("rate limit salt is not configured")

// DefaultWindow is how long one submission blocks further submissions from
// the same identifier.
const DefaultWindow = 24 * time.Hour

const keyPrefix = "contact:"

// Limiter enforces the one-submission-per-identifier policy using Redis
// records that expire on their own after the window passes.
//
// Check and Record are deliberately separate calls: a record is only written
// after the caller confirms the email actually went out, so a failed send
// never consumes the sender's quota. Two concurrent requests from one
// identifier can therefore both pass Check before either Records; see
// DESIGN.md for why that race is accepted.
type Limiter struct {
	redis  *redis.Client
	salt   string
	window time.Duration
}

// NewLimiter creates a limiter over an existing Redis client. An empty salt
// is tolerated here so the server can still boot and report the fault per
// request; every key derivation will fail with ErrNoSalt until it is set.
func NewLimiter(redisClient *redis.Client, salt string, window time.Duration) *Limiter {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Limiter{redis: redisClient, salt: salt, window: window}
}

// NewLimiterFromURL creates a limiter by connecting to Redis and verifying
// the connection with a ping.
func NewLimiterFromURL(redisURL, salt string, window time.Duration) (*Limiter, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return NewLimiter(client, salt, window), nil
}

// Key returns the namespaced store key for an identifier: a salted SHA-256
// digest so raw IPs and email addresses never appear in Redis.
func (l *Limiter) Key(identifier string) (string, error) {
	if l.salt == "" {
		return "", ErrNoSalt
	}
	sum := sha256.Sum256([]byte(identifier + l.salt))
	return keyPrefix + hex.EncodeToString(sum[:]), nil
}

// Check reports whether the identifier has already submitted within the
// current window. The salt check runs before Redis is touched.
func (l *Limiter) Check(ctx context.Context, identifier string) (bool, error) {
	key, err := l.Key(identifier)
	if err != nil {
		return false, err
	}

	val, err := l.redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("rate limit check failed: %w", err)
	}
	return val != "", nil
}

// Record marks the identifier as having submitted, with TTL expiry doing the
// cleanup. Called only after a confirmed successful dispatch.
func (l *Limiter) Record(ctx context.Context, identifier string) error {
	key, err := l.Key(identifier)
	if err != nil {
		return err
	}

	if err := l.redis.Set(ctx, key, true, l.window).Err(); err != nil {
		return fmt.Errorf("rate limit record failed: %w", err)
	}
	return nil
}

// Window returns the configured rate-limit window.
func (l *Limiter) Window() time.Duration {
	return l.window
}

// Close closes the underlying Redis connection.
func (l *Limiter) Close() error {
	return l.redis.Close()
}
