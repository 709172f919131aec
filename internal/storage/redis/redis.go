package redis

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// common wrapper above a redis, with async saver
type Client[V any] struct {
	rdb        *redis.Client
	prefix     string
	expiration time.Duration
	marshal    func(V) (string, error)
	unmarshal  func(string) (V, error)
	saveChan   chan redisEntity[V]
	done       <-chan struct{}
}

type redisEntity[V any] struct {
	key   string
	value V
}

// Connect opens the connection pool shared by every Client
func Connect(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// New returns a client storing values of type V under prefix:key for expiration
func New[V any](ctx context.Context,
	rdb *redis.Client,
	prefix string,
	expiration time.Duration,
	marshal func(V) (string, error),
	unmarshal func(string) (V, error),
	chanSize int) *Client[V] {

	client := &Client[V]{
		rdb:        rdb,
		prefix:     prefix,
		expiration: expiration,
		marshal:    marshal,
		unmarshal:  unmarshal,
		saveChan:   make(chan redisEntity[V], chanSize),
		done:       ctx.Done(),
	}

	//goroutine that saves elem async
	go client.runUpdater(ctx)

	return client
}

// MarshalJSON and UnmarshalJSON are the codec of values stored as json
func MarshalJSON[V any](v V) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func UnmarshalJSON[V any](s string) (V, error) {
	var v V
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		var zero V
		return zero, err
	}
	return v, nil
}

func (c *Client[V]) key(key string) string {
	return c.prefix + ":" + key
}

func (c *Client[V]) Set(ctx context.Context, key string, value V) error {
	strValue, err := c.marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key(key), strValue, c.expiration).Err()
}

// Get returns false without error when the key is absent
func (c *Client[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V
	strValue, err := c.rdb.Get(ctx, c.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	v, err := c.unmarshal(strValue)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// async save
func (c *Client[V]) Update(key string, value V) {
	select {
	case c.saveChan <- redisEntity[V]{key: key, value: value}:
	default:
		//if blocked do new goroutine
		go func() {
			select {
			case c.saveChan <- redisEntity[V]{key: key, value: value}:
			case <-c.done:
			}
		}()
	}
}

func (c *Client[V]) runUpdater(ctx context.Context) {
	for {
		select {
		case entity, ok := <-c.saveChan:
			if !ok {
				return
			}
			if err := c.Set(ctx, entity.key, entity.value); err != nil {
				log.Warn().Err(err).Str("key", c.key(entity.key)).Msg("couldn't save to redis")
			}
		case <-ctx.Done():
			return
		}
	}
}
