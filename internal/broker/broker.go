package broker

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/calebmayer/textsnap/constants"
	"github.com/calebmayer/textsnap/internal/common"
)

// Queue is the list-backed message broker used between pipeline stages.
// Dequeue blocks up to the configured timeout and returns ("", nil) when
// the queue stayed empty, so callers can loop without treating idleness
// as an error.
type Queue interface {
	Enqueue(ctx context.Context, queue string, payload string) error
	Dequeue(ctx context.Context, queue string) (string, error)
	Ack(ctx context.Context, queue string, payload string) error
	Depth(ctx context.Context, queue string) (int64, error)
}

type Option func(*RedisQueue)

// WithAckMode makes Dequeue move messages to a processing list instead of
// removing them outright. Callers must Ack after the message is handed
// downstream, otherwise it stays on the processing list for inspection.
func WithAckMode() Option {
	return func(q *RedisQueue) { q.ackMode = true }
}

func WithDequeueTimeout(d time.Duration) Option {
	return func(q *RedisQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

type RedisQueue struct {
	rdb     *redis.Client
	timeout time.Duration
	ackMode bool
}

// NewRedisQueue parses a redis:// URL and returns a connected queue client.
func NewRedisQueue(redisURL string, opts ...Option) (*RedisQueue, error) {
	ropts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, common.WrapError(common.ErrBrokerUnavailable, "parse redis url")
	}
	q := &RedisQueue{
		rdb:     redis.NewClient(ropts),
		timeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q, nil
}

func (q *RedisQueue) Ping(ctx context.Context) error {
	if err := q.rdb.Ping(ctx).Err(); err != nil {
		return common.WrapError(common.ErrBrokerUnavailable, "ping")
	}
	return nil
}

func (q *RedisQueue) Enqueue(ctx context.Context, queue string, payload string) error {
	if err := q.rdb.LPush(ctx, queue, payload).Err(); err != nil {
		return common.WrapError(common.ErrBrokerUnavailable, "lpush "+queue)
	}
	return nil
}

func (q *RedisQueue) Dequeue(ctx context.Context, queue string) (string, error) {
	if q.ackMode {
		return q.dequeueReliable(ctx, queue)
	}
	res, err := q.rdb.BRPop(ctx, q.timeout, queue).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", common.WrapError(common.ErrBrokerUnavailable, "brpop "+queue)
	}
	// BRPOP returns [key, value]
	return res[1], nil
}

func (q *RedisQueue) dequeueReliable(ctx context.Context, queue string) (string, error) {
	res, err := q.rdb.BLMove(ctx, queue, queue+constants.ProcessingSuffix, "RIGHT", "LEFT", q.timeout).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", common.WrapError(common.ErrBrokerUnavailable, "blmove "+queue)
	}
	return res, nil
}

// Ack removes an in-flight message from the processing list. A no-op when
// ack mode is off.
func (q *RedisQueue) Ack(ctx context.Context, queue string, payload string) error {
	if !q.ackMode {
		return nil
	}
	if err := q.rdb.LRem(ctx, queue+constants.ProcessingSuffix, 1, payload).Err(); err != nil {
		return common.WrapError(common.ErrBrokerUnavailable, "lrem "+queue)
	}
	return nil
}

func (q *RedisQueue) Depth(ctx context.Context, queue string) (int64, error) {
	n, err := q.rdb.LLen(ctx, queue).Result()
	if err != nil {
		return 0, common.WrapError(common.ErrBrokerUnavailable, "llen "+queue)
	}
	return n, nil
}

func (q *RedisQueue) Close() error {
	return q.rdb.Close()
}
