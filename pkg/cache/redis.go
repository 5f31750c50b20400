package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"tour-booking/pkg/utils"

	"github.com/redis/rueidis"
)

const generationKey = "stats:generation"

// Redis keys every entry under the current generation number, so bumping
// the generation invalidates all entries without scanning the keyspace.
type Redis struct {
	client rueidis.Client
	ttl    time.Duration
}

func NewRedis(cfg utils.RedisConfig) (*Redis, error) {
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{cfg.Addr},
		Password:     cfg.Password,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect redis %s: %w", cfg.Addr, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}

	ttl := cfg.StatsTTL
	if ttl <= 0 {
		ttl = time.Minute
	}

	return &Redis{client: client, ttl: ttl}, nil
}

func (c *Redis) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Do(ctx, c.client.B().Get().Key(generationKey).Build()).AsInt64()
	if rueidis.IsRedisNil(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read stats generation: %w", err)
	}
	return gen, nil
}

func (c *Redis) key(gen int64, key string) string {
	return "stats:" + strconv.FormatInt(gen, 10) + ":" + key
}

func (c *Redis) Get(ctx context.Context, key string) (Lookup, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return Lookup{}, err
	}

	val, err := c.client.Do(ctx, c.client.B().Get().Key(c.key(gen, key)).Build()).AsBytes()
	if rueidis.IsRedisNil(err) {
		return Lookup{Generation: gen}, nil
	}
	if err != nil {
		return Lookup{}, fmt.Errorf("get cached %s: %w", key, err)
	}

	return Lookup{Value: val, Hit: true, Generation: gen}, nil
}

// Set stores value under the generation returned by the Get that missed,
// never the current one.
func (c *Redis) Set(ctx context.Context, generation int64, key string, value []byte) error {
	cmd := c.client.B().Set().
		Key(c.key(generation, key)).
		Value(rueidis.BinaryString(value)).
		ExSeconds(int64(c.ttl / time.Second)).
		Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("set cached %s: %w", key, err)
	}

	return nil
}

func (c *Redis) Invalidate(ctx context.Context) error {
	if err := c.client.Do(ctx, c.client.B().Incr().Key(generationKey).Build()).Error(); err != nil {
		return fmt.Errorf("bump stats generation: %w", err)
	}
	return nil
}

func (c *Redis) Close() {
	c.client.Close()
}
