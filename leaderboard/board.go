// Package leaderboard ranks runs by their best combo in a redis sorted set.
package leaderboard

import (
	"context"
	"fmt"
	"log"
	"time"

	cfg "github.com/automoto/fruitfight/config"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	dialTimeout = 5 * time.Second
	// keep bounds the sorted set; lower ranks are trimmed on submit.
	keep = 100
)

// Client is the part of *redis.Client the board uses.
type Client interface {
	ZAdd(ctx context.Context, key string, members ...*redis.Z) *redis.IntCmd
	ZRevRank(ctx context.Context, key, member string) *redis.IntCmd
	ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) *redis.ZSliceCmd
	ZRemRangeByRank(ctx context.Context, key string, start, stop int64) *redis.IntCmd
}

// Entry is one ranked run. Rank starts at 1.
type Entry struct {
	Rank     int
	RunID    string
	MaxCombo int
}

type Board struct {
	client Client
	key    string
}

func New(client Client, key string) *Board {
	return &Board{client: client, key: key}
}

// Dial connects to the configured redis server and checks it answers.
func Dial(ctx context.Context, c cfg.LeaderboardConfig) (*Board, *redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("connect to redis %s: %w", c.Addr, err)
	}

	log.Printf("[leaderboard] Connected to %s", c.Addr)
	return New(client, c.Key), client, nil
}

// Submit records a run and returns its rank.
func (b *Board) Submit(ctx context.Context, runID uuid.UUID, maxCombo int) (int, error) {
	member := runID.String()
	if err := b.client.ZAdd(ctx, b.key, &redis.Z{
		Score:  float64(maxCombo),
		Member: member,
	}).Err(); err != nil {
		log.Printf("[leaderboard] Warning: Could not submit run %s: %v", member, err)
		return 0, err
	}

	rank, err := b.client.ZRevRank(ctx, b.key, member).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, err
	}

	if err := b.client.ZRemRangeByRank(ctx, b.key, 0, -keep-1).Err(); err != nil {
		log.Printf("[leaderboard] Warning: Could not trim %s: %v", b.key, err)
	}
	return int(rank) + 1, nil
}

// Top returns the best n runs, highest combo first.
func (b *Board) Top(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}
	members, err := b.client.ZRevRangeWithScores(ctx, b.key, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(members))
	for i, m := range members {
		id, ok := m.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Rank:     i + 1,
			RunID:    id,
			MaxCombo: int(m.Score),
		})
	}
	return entries, nil
}
