// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// TransportRequest models a cooperative's request for freight
// transport, as carried by the change-event stream.
type TransportRequest struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Origin      string        `json:"origin"`
	Destination string        `json:"destination"`
	Status      RequestStatus `json:"status"`
}

// RequestStatus enumerates the lifecycle states of a transport
// request.
type RequestStatus int

// Valid values for the RequestStatus enum.
const (
	RequestStatusInvalid RequestStatus = iota // zero value is invalid

	RequestStatusOpen
	RequestStatusInProgress
	RequestStatusCompleted
	RequestStatusCancelled
)

// ErrUnknownRequestStatus indicates that a given string may not be
// parsed as a valid/known request status.
var ErrUnknownRequestStatus = errors.New("unknown request status")

// Validate returns nil if the RequestStatus value is valid.
func (s RequestStatus) Validate() error {
	switch s {
	case RequestStatusOpen, RequestStatusInProgress,
		RequestStatusCompleted, RequestStatusCancelled:
		return nil
	default:
		return fmt.Errorf("invalid request status: %d", int(s))
	}
}

// String converts the RequestStatus enum to its wire-level string.
// Invalid statuses cause a panic.
func (s RequestStatus) String() string {
	switch s {
	case RequestStatusOpen:
		return "open"
	case RequestStatusInProgress:
		return "in_progress"
	case RequestStatusCompleted:
		return "completed"
	case RequestStatusCancelled:
		return "cancelled"
	default:
		panic(fmt.Sprintf("invalid request status: %d", int(s)))
	}
}

// MarshalText implements encoding.TextMarshaler for JSON encoding.
func (s RequestStatus) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so statuses can
// be decoded directly from change-event payloads.
func (s *RequestStatus) UnmarshalText(text []byte) error {
	ss, err := ParseRequestStatus(string(text))
	if err != nil {
		return err
	}
	*s = ss
	return nil
}

// ParseRequestStatus parses the given string and returns a
// RequestStatus. For invalid strings, RequestStatusInvalid and
// ErrUnknownRequestStatus will be returned.
func ParseRequestStatus(s string) (RequestStatus, error) {
	switch s {
	case "open":
		return RequestStatusOpen, nil
	case "in_progress":
		return RequestStatusInProgress, nil
	case "completed":
		return RequestStatusCompleted, nil
	case "cancelled":
		return RequestStatusCancelled, nil
	default:
		return RequestStatusInvalid, ErrUnknownRequestStatus
	}
}
