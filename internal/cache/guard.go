package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Guard remembers completed redemptions until the next UTC midnight so the
// daily rule can be answered without touching Postgres.
type Guard struct {
	client *redis.Client
}

func NewGuard(ctx context.Context, addr string) (*Guard, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	zap.L().Info("connected to redis", zap.String("addr", addr))
	return &Guard{client: client}, nil
}

func key(memberID, gymID int, day string) string {
	return fmt.Sprintf("redeem:%d:%d:%s", memberID, gymID, day)
}

func (g *Guard) SeenToday(ctx context.Context, memberID, gymID int, day string) (bool, error) {
	err := g.client.Get(ctx, key(memberID, gymID, day)).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (g *Guard) Mark(ctx context.Context, memberID, gymID int, day string, ttl time.Duration) error {
	return g.client.Set(ctx, key(memberID, gymID, day), 1, ttl).Err()
}

func (g *Guard) Close() error {
	return g.client.Close()
}
