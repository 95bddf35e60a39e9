package redis

import (
	"context"
	"errors"
	"time"

	"github.com/farhanashraf/domain-assistants/internal/agent"
	"github.com/farhanashraf/domain-assistants/internal/assistant"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Consumer reads chat requests from a Redis stream, runs them through the
// pipeline, and writes replies to the out stream. Request fields: domain,
// message, and an optional request_id echoed back for correlation.
type Consumer struct {
	client   *redis.Client
	cfg      Config
	registry *assistant.Registry
	pipeline *agent.Pipeline
	logger   *zerolog.Logger
}

func NewConsumer(client *redis.Client, cfg Config, registry *assistant.Registry, pipeline *agent.Pipeline, logger *zerolog.Logger) *Consumer {
	return &Consumer{
		client:   client,
		cfg:      cfg,
		registry: registry,
		pipeline: pipeline,
		logger:   logger,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.cfg.InStream, c.cfg.GroupID, "0").Err()
	if err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		return err
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.cfg.InStream).
		Str("group", c.cfg.GroupID).
		Str("consumer", c.cfg.ConsumerName).
		Msg("Consumer started")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		msgs, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.cfg.GroupID,
			Consumer: c.cfg.ConsumerName,
			Streams:  []string{c.cfg.InStream, ">"},
			Count:    1,
			Block:    2 * time.Second,
		}).Result()

		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if errors.Is(err, context.Canceled) {
				return err
			}
			c.logger.Warn().Err(err).Msg("failed to read from stream")
			continue
		}

		for _, stream := range msgs {
			for _, msg := range stream.Messages {
				c.handle(ctx, msg)
			}
		}
	}
}

func (c *Consumer) handle(ctx context.Context, msg redis.XMessage) {
	domain, _ := msg.Values["domain"].(string)
	message, _ := msg.Values["message"].(string)
	requestID, _ := msg.Values["request_id"].(string)

	fields := map[string]any{
		"request_id": requestID,
		"domain":     domain,
	}

	asst, ok := c.registry.Get(domain)
	if !ok {
		fields["error"] = "unknown assistant domain"
		c.publish(ctx, msg.ID, fields)
		return
	}

	result, err := c.pipeline.HandleMessage(ctx, asst, message)
	if err != nil {
		c.logger.Error().Err(err).Str("domain", domain).Msg("pipeline failed")
		fields["error"] = err.Error()
		c.publish(ctx, msg.ID, fields)
		return
	}

	fields["outcome"] = string(result.Outcome)
	fields["reply"] = result.Reply
	c.publish(ctx, msg.ID, fields)
}

func (c *Consumer) publish(ctx context.Context, msgID string, fields map[string]any) {
	if err := c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: c.cfg.OutStream,
		Values: fields,
	}).Err(); err != nil {
		c.logger.Error().Err(err).Str("msg_id", msgID).Msg("failed to publish reply")
		return
	}

	if err := c.client.XAck(ctx, c.cfg.InStream, c.cfg.GroupID, msgID).Err(); err != nil {
		c.logger.Warn().Err(err).Str("msg_id", msgID).Msg("failed to ack message")
	}
}
