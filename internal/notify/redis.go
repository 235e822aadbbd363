package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const redisChannel = "barbearia:notifications"

// RedisSink publica o evento num canal pub/sub do Redis, para
// transportes de push externos ao processo. Fire-and-forget:
// falha vira log, nunca erro para o chamador.
type RedisSink struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisSink(addr string, log *zap.Logger) *RedisSink {
	return &RedisSink{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		log:    log,
	}
}

func (s *RedisSink) Publish(ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		s.log.Error("notify: marshal event", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.client.Publish(ctx, redisChannel, payload).Err(); err != nil {
		s.log.Warn("notify: redis publish failed",
			zap.String("type", ev.Type),
			zap.Error(err),
		)
	}
}

func (s *RedisSink) Close() error {
	return s.client.Close()
}
