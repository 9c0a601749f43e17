package repository

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const presenceKey = "chat:users_online"

// PresenceRepository tracks which usernames currently hold a websocket
// connection. State is transient and rebuilt from connections, so a flushed
// redis is harmless.
type PresenceRepository interface {
	Add(ctx context.Context, username string) error
	Remove(ctx context.Context, username string) error
	List(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

type presenceRepository struct {
	rdb *redis.Client
}

func NewPresenceRepository(rdb *redis.Client) PresenceRepository {
	return &presenceRepository{rdb: rdb}
}

func (r *presenceRepository) Add(ctx context.Context, username string) error {
	return r.rdb.SAdd(ctx, presenceKey, username).Err()
}

func (r *presenceRepository) Remove(ctx context.Context, username string) error {
	return r.rdb.SRem(ctx, presenceKey, username).Err()
}

func (r *presenceRepository) List(ctx context.Context) ([]string, error) {
	return r.rdb.SMembers(ctx, presenceKey).Result()
}

func (r *presenceRepository) Count(ctx context.Context) (int64, error) {
	return r.rdb.SCard(ctx, presenceKey).Result()
}

// NewRedisClient connects and pings, failing fast at boot.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return client, nil
}
