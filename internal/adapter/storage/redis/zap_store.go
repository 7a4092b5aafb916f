package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ZapStore implements ports.CorrelationStore using plain Redis SET with TTL.
// Keys are scoped under "nostrInvoice:" so downstream consumers watching for
// settled invoices can find the zap request event by payment hash.
type ZapStore struct {
	client *goredis.Client
	prefix string
}

// NewZapStore creates a new Redis-backed zap correlation store.
func NewZapStore(client *goredis.Client) *ZapStore {
	return &ZapStore{
		client: client,
		prefix: "nostrInvoice:",
	}
}

// Set records the zap request event under the invoice's payment hash. A later
// write for the same hash overwrites the earlier one.
func (s *ZapStore) Set(ctx context.Context, paymentHash string, event []byte, ttl time.Duration) error {
	key := s.prefix + paymentHash
	if err := s.client.Set(ctx, key, event, ttl).Err(); err != nil {
		return fmt.Errorf("redis zap set: %w", err)
	}
	return nil
}
