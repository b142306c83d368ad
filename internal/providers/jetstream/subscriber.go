// Package jetstream consumes decoded marketplace events from a NATS
// JetStream stream. The consumer is durable with a single pending ack, which
// preserves the (block, tx index, log index) delivery order the projector
// depends on.
package jetstream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/gallerie/market-indexer/internal/adapter"
	"github.com/gallerie/market-indexer/internal/domain"
	"github.com/gallerie/market-indexer/internal/logger"
	"github.com/gallerie/market-indexer/internal/messaging"
)

// Config holds the configuration for the NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

// wireEvent is the on-the-wire shape of one decoded event. Params stays raw
// until the (source, name) pair selects a payload type.
type wireEvent struct {
	domain.Envelope
	Source domain.EventSource `json:"source"`
	Name   string             `json:"name"`
	Params json.RawMessage    `json:"params"`
}

type subscriber struct {
	nc         adapter.NatsConn
	js         adapter.JetStream
	cfg        Config
	json       adapter.JSON
	consumeCtx adapter.ConsumeContext
}

// NewSubscriber creates a new NATS JetStream subscriber
func NewSubscriber(cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Subscriber, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &subscriber{
		nc:   nc,
		js:   js,
		cfg:  cfg,
		json: jsonAdapter,
	}, nil
}

// SubscribeEvents consumes the stream one message at a time. MaxAckPending
// of 1 keeps delivery strictly sequential across redeliveries.
func (s *subscriber) SubscribeEvents(ctx context.Context, handler messaging.EventHandler) error {
	consumer, err := s.js.CreateOrUpdateConsumer(ctx, s.cfg.StreamName, jetstream.ConsumerConfig{
		Durable:       s.cfg.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		DeliverPolicy: jetstream.DeliverAllPolicy,
		MaxAckPending: 1,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	consumeCtx, err := consumer.Consume(func(msg adapter.Message) {
		s.handleMessage(ctx, msg, handler)
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}
	s.consumeCtx = consumeCtx

	select {
	case <-ctx.Done():
		consumeCtx.Drain()
		return ctx.Err()
	case <-consumeCtx.Closed():
		return nil
	}
}

func (s *subscriber) handleMessage(ctx context.Context, msg adapter.Message, handler messaging.EventHandler) {
	event, err := s.decode(msg.Data())
	if err != nil {
		// A message that cannot decode will never decode; drop it
		logger.ErrorCtx(ctx, err, zap.String("message", "Dropping undecodable event"))
		if termErr := msg.Term(); termErr != nil {
			logger.ErrorCtx(ctx, termErr)
		}
		return
	}

	if event == nil {
		// Not an event this projector consumes
		if ackErr := msg.Ack(); ackErr != nil {
			logger.ErrorCtx(ctx, ackErr)
		}
		return
	}

	if err := handler(event); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("txHash", event.TxHash.Hex()),
			zap.Uint("logIndex", event.LogIndex),
			zap.String("event", event.Name))
		if nakErr := msg.Nak(); nakErr != nil {
			logger.ErrorCtx(ctx, nakErr)
		}
		return
	}

	if err := msg.Ack(); err != nil {
		logger.ErrorCtx(ctx, err)
	}
}

// decode unmarshals a wire message into a typed event. It returns (nil, nil)
// for event names the projector does not consume.
func (s *subscriber) decode(data []byte) (*domain.Event, error) {
	var wire wireEvent
	if err := s.json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	payload, ok := domain.PayloadFor(wire.Source, wire.Name)
	if !ok {
		return nil, nil
	}

	if len(wire.Params) > 0 {
		if err := s.json.Unmarshal(wire.Params, payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s params: %w", wire.Name, err)
		}
	}

	return &domain.Event{
		Envelope: wire.Envelope,
		Source:   wire.Source,
		Name:     wire.Name,
		Payload:  payload,
	}, nil
}

// Close stops consumption and closes the NATS connection
func (s *subscriber) Close() {
	if s.consumeCtx != nil {
		s.consumeCtx.Stop()
	}
	if s.nc != nil {
		s.nc.Close()
	}
}
