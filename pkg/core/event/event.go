// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package event defines the change-event stream port. The backend
// publishes one envelope per inserted or updated marketplace record
// and this package models those envelopes and the subscription
// interface, keeping the core independent of the actual transport
// (see pkg/adapter/stream/kafka for the Kafka-backed realization).
package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// Change-event table names. These form the closed set of channels the
// notification aggregator may subscribe to.
const (
	TableProposals = "proposals"
	TableMessages  = "messages"
	TableRequests  = "requests"
)

// Envelope is one change event as delivered by the stream transport.
// New carries the row contents after the change and Old carries the
// previous contents for updates (may be empty). Both are kept raw, so
// each subscriber decodes only the payload type it cares about.
type Envelope struct {
	Table string          `json:"table"`
	Op    Op              `json:"op"`
	New   json.RawMessage `json:"new"`
	Old   json.RawMessage `json:"old,omitempty"`
}

// Decode unmarshals a raw envelope payload into the given record type.
func Decode[T any](raw json.RawMessage) (T, error) {
	var payload T
	err := json.Unmarshal(raw, &payload)
	return payload, err
}

// Handler consumes one delivered envelope. Handlers may be invoked
// from transport-owned goroutines and must not block for long.
type Handler func(ctx context.Context, e Envelope)

// Unsubscribe releases one subscription. It is idempotent and returns
// only after the transport stops delivering to the handler.
type Unsubscribe func()

// Stream is the change-event subscription service. Each Subscribe
// registration is independent: its delivery failures or its release
// never affect other registrations. Reconnection after a transport
// outage is the implementation's responsibility; subscribers never
// observe connection health.
type Stream interface {
	Subscribe(ctx context.Context, table string, op Op, h Handler) (Unsubscribe, error)
}

// Op specifies the change operation enum, covering row insertion and
// update. It is (de)serialized as a string on the wire.
type Op int

// Valid values for the Op enum.
const (
	OpInvalid Op = iota // zero value is invalid

	OpInsert
	OpUpdate
)

// ErrUnknownOp indicates that a given string may not be parsed as a
// valid/known change operation.
var ErrUnknownOp = errors.New("unknown change operation")

// Validate returns nil if the Op value is valid.
func (o Op) Validate() error {
	switch o {
	case OpInsert, OpUpdate:
		return nil
	default:
		return fmt.Errorf("invalid change operation: %d", int(o))
	}
}

// String converts the Op enum to its wire-level string. Invalid
// operations cause a panic.
func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpUpdate:
		return "update"
	default:
		panic(fmt.Sprintf("invalid change operation: %d", int(o)))
	}
}

// MarshalText implements encoding.TextMarshaler for JSON encoding.
func (o Op) MarshalText() ([]byte, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so operations
// can be decoded directly from envelope JSON.
func (o *Op) UnmarshalText(text []byte) error {
	oo, err := ParseOp(string(text))
	if err != nil {
		return err
	}
	*o = oo
	return nil
}

// ParseOp parses the given string and returns an Op. For invalid
// strings, OpInvalid and ErrUnknownOp will be returned.
func ParseOp(o string) (Op, error) {
	switch o {
	case "insert":
		return OpInsert, nil
	case "update":
		return OpUpdate, nil
	default:
		return OpInvalid, ErrUnknownOp
	}
}
