// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// By the way, it is acceptable to annotate structs in this package with
// framework dependent tags (e.g., as required by ORM or serialization
// libraries) since adding more tags does not complicate definition of
// a struct, but can prevent unnecessary structs duplication.
package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Notification models a single user-facing notification entry as kept
// by the in-memory aggregator. It is never persisted; the CreatedAt
// field records the local receipt time, not the server event time.
type Notification struct {
	ID          uuid.UUID        `json:"id"`
	Kind        NotificationKind `json:"kind"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	CreatedAt   time.Time        `json:"created_at"`
	Read        bool             `json:"read"`
}

// NewNotification creates a notification with a fresh identifier and
// the current local time, initially unread.
func NewNotification(kind NotificationKind, title, description string) Notification {
	return Notification{
		ID:          uuid.New(),
		Kind:        kind,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
	}
}

// NotificationKind classifies the event which triggered a
// notification. Although this enum is numeric, it is (de)serialized
// as a string for readability in the adapter layer.
type NotificationKind int

// Valid values for the NotificationKind enum.
const (
	NotificationKindInvalid NotificationKind = iota // zero value is invalid

	NotificationKindProposal // a new transport proposal arrived
	NotificationKindMessage  // a new chat message arrived
	NotificationKindStatus   // a request/payment status transition
	NotificationKindUser     // account-level events
)

// ErrUnknownNotificationKind indicates that a given string may not be
// parsed as a valid/known notification kind.
var ErrUnknownNotificationKind = errors.New("unknown notification kind")

// NotificationKindError indicates an invalid notification kind value,
// carrying the invalid kind as an integer.
type NotificationKindError int

// Error implements the error interface, returning a string
// representation of the NotificationKindError.
func (e NotificationKindError) Error() string {
	return fmt.Sprintf("invalid notification kind: %d", e)
}

// Validate returns nil if NotificationKind value is valid. For invalid
// values, an instance of NotificationKindError will be returned.
func (k NotificationKind) Validate() error {
	switch k {
	case NotificationKindProposal, NotificationKindMessage,
		NotificationKindStatus, NotificationKindUser:
		return nil
	default:
		return NotificationKindError(k)
	}
}

// String converts the NotificationKind enum to a string, helping to
// serialize it for transmission to web clients. Invalid kinds cause
// a panic.
func (k NotificationKind) String() string {
	switch k {
	case NotificationKindProposal:
		return "proposal"
	case NotificationKindMessage:
		return "message"
	case NotificationKindStatus:
		return "status"
	case NotificationKindUser:
		return "user"
	default:
		panic(NotificationKindError(k))
	}
}

// MarshalText implements encoding.TextMarshaler, so a kind is encoded
// as its string form in JSON responses.
func (k NotificationKind) MarshalText() ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	return []byte(k.String()), nil
}

// ParseNotificationKind parses the given string and returns a
// NotificationKind, helping to deserialize it when reading a REST API
// request. For invalid strings, NotificationKindInvalid and
// ErrUnknownNotificationKind will be returned.
func ParseNotificationKind(k string) (NotificationKind, error) {
	switch k {
	case "proposal":
		return NotificationKindProposal, nil
	case "message":
		return NotificationKindMessage, nil
	case "status":
		return NotificationKindStatus, nil
	case "user":
		return NotificationKindUser, nil
	default:
		return NotificationKindInvalid, ErrUnknownNotificationKind
	}
}
