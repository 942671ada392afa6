// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package kafka realizes the event.Stream port on top of Apache Kafka
// using the segmentio/kafka-go client. The backend publishes one JSON
// envelope per changed row on a per-table topic; each Subscribe call
// owns an independent reader with its own consumer group, so two
// subscriptions on the same table (e.g. inserts and updates) both see
// every envelope. Broker reconnection is handled inside kafka-go; no
// connection health is surfaced to subscribers.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/mova-mz/mova-core/pkg/core/event"
	"github.com/mova-mz/mova-core/pkg/core/log"
	"github.com/segmentio/kafka-go"
)

// Stream is an event.Stream which consumes change-event envelopes
// from Kafka topics named <prefix><table>.
type Stream struct {
	brokers     []string
	groupID     string
	topicPrefix string

	commitInterval time.Duration
	maxWait        time.Duration
}

// Option represents an optional parameter for the Stream
// instantiation. In case an option cannot be applied, it returns a
// non-nil error.
type Option func(*Stream) error

// WithCommitInterval configures how frequently consumed offsets are
// committed back to the brokers.
func WithCommitInterval(d time.Duration) Option {
	return func(s *Stream) error {
		if d <= 0 {
			return fmt.Errorf("non-positive commit interval: %v", d)
		}
		s.commitInterval = d
		return nil
	}
}

// WithMaxWait configures how long a fetch may block waiting for new
// envelopes before polling again.
func WithMaxWait(d time.Duration) Option {
	return func(s *Stream) error {
		if d <= 0 {
			return fmt.Errorf("non-positive max wait: %v", d)
		}
		s.maxWait = d
		return nil
	}
}

// New instantiates a Kafka-backed change-event stream. The groupID is
// the consumer-group prefix; each subscription derives its own group
// from it, so independent subscriptions never split one topic's
// messages among themselves.
func New(
	brokers []string, groupID, topicPrefix string, opts ...Option,
) (*Stream, error) {
	s := &Stream{
		brokers:        brokers,
		groupID:        groupID,
		topicPrefix:    topicPrefix,
		commitInterval: time.Second,
		maxWait:        time.Second,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	return s, nil
}

// Subscribe registers a handler for the table's change events with
// the given operation and starts its consume loop. The returned
// Unsubscribe is idempotent and returns only after the consume loop
// has stopped, so no delivery can follow it.
func (s *Stream) Subscribe(
	ctx context.Context, table string, op event.Op, h event.Handler,
) (event.Unsubscribe, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        s.brokers,
		Topic:          s.topicPrefix + table,
		GroupID:        fmt.Sprintf("%s-%s-%s", s.groupID, table, op),
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: s.commitInterval,
		MaxWait:        s.maxWait,
	})
	ctx2, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})
	go s.consume(ctx2, r, table, op, h, done)
	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			if err := r.Close(); err != nil {
				log.Warn(
					ctx2, "closing kafka reader",
					log.Table(table), log.Err("error", err),
				)
			}
			<-done
		})
	}, nil
}

func (s *Stream) consume(
	ctx context.Context,
	r *kafka.Reader,
	table string,
	op event.Op,
	h event.Handler,
	done chan<- struct{},
) {
	defer close(done)
	for {
		msg, err := r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil ||
				errors.Is(err, io.EOF) ||
				errors.Is(err, io.ErrClosedPipe) {
				return
			}
			log.Warn(
				ctx, "fetching change event",
				log.Table(table), log.Err("error", err),
			)
			continue
		}
		e, err := parseEnvelope(msg)
		switch {
		case err != nil:
			log.Debug(
				ctx, "dropping malformed change event",
				log.Table(table), log.Err("error", err),
			)
		case e.Op == op:
			if e.Table == "" {
				e.Table = table
			}
			h(ctx, e)
		}
		if err := r.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			log.Warn(
				ctx, "committing change event offset",
				log.Table(table), log.Err("error", err),
			)
		}
	}
}

func parseEnvelope(msg kafka.Message) (event.Envelope, error) {
	var e event.Envelope
	err := json.Unmarshal(msg.Value, &e)
	return e, err
}

// NewWriter creates a producer for one table's change-event topic.
// It backs the `movaweb stream emit` command; the core itself never
// publishes envelopes.
func NewWriter(brokers []string, topicPrefix, table string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topicPrefix + table,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 250 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
}

// PublishEnvelope marshals and publishes one change-event envelope,
// keyed by the table name for per-table ordering.
func PublishEnvelope(
	ctx context.Context, w *kafka.Writer, e event.Envelope,
) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshaling envelope: %w", err)
	}
	return w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.Table),
		Value: body,
		Time:  time.Now().UTC(),
	})
}
