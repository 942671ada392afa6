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

// Proposal models a transporter's freight proposal for a transport
// request, as carried by the change-event stream. The marketplace
// tables themselves are owned by the backend; only the fields needed
// for notification rendering are modeled here.
type Proposal struct {
	ID              uuid.UUID      `json:"id"`
	RequestID       uuid.UUID      `json:"request_id"`
	TransporterName string         `json:"transporter_name"`
	Price           float64        `json:"price"`
	Status          ProposalStatus `json:"status"`
}

// ProposalStatus enumerates the lifecycle states of a proposal.
type ProposalStatus int

// Valid values for the ProposalStatus enum.
const (
	ProposalStatusInvalid ProposalStatus = iota // zero value is invalid

	ProposalStatusPending
	ProposalStatusAccepted
	ProposalStatusPaid
	ProposalStatusConfirmed
	ProposalStatusRejected
)

// ErrUnknownProposalStatus indicates that a given string may not be
// parsed as a valid/known proposal status.
var ErrUnknownProposalStatus = errors.New("unknown proposal status")

// Validate returns nil if the ProposalStatus value is valid.
func (s ProposalStatus) Validate() error {
	switch s {
	case ProposalStatusPending, ProposalStatusAccepted,
		ProposalStatusPaid, ProposalStatusConfirmed,
		ProposalStatusRejected:
		return nil
	default:
		return fmt.Errorf("invalid proposal status: %d", int(s))
	}
}

// String converts the ProposalStatus enum to its wire-level string.
// Invalid statuses cause a panic.
func (s ProposalStatus) String() string {
	switch s {
	case ProposalStatusPending:
		return "pending"
	case ProposalStatusAccepted:
		return "accepted"
	case ProposalStatusPaid:
		return "paid"
	case ProposalStatusConfirmed:
		return "confirmed"
	case ProposalStatusRejected:
		return "rejected"
	default:
		panic(fmt.Sprintf("invalid proposal status: %d", int(s)))
	}
}

// MarshalText implements encoding.TextMarshaler for JSON encoding.
func (s ProposalStatus) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so statuses can
// be decoded directly from change-event payloads.
func (s *ProposalStatus) UnmarshalText(text []byte) error {
	ss, err := ParseProposalStatus(string(text))
	if err != nil {
		return err
	}
	*s = ss
	return nil
}

// ParseProposalStatus parses the given string and returns a
// ProposalStatus. For invalid strings, ProposalStatusInvalid and
// ErrUnknownProposalStatus will be returned.
func ParseProposalStatus(s string) (ProposalStatus, error) {
	switch s {
	case "pending":
		return ProposalStatusPending, nil
	case "accepted":
		return ProposalStatusAccepted, nil
	case "paid":
		return ProposalStatusPaid, nil
	case "confirmed":
		return ProposalStatusConfirmed, nil
	case "rejected":
		return ProposalStatusRejected, nil
	default:
		return ProposalStatusInvalid, ErrUnknownProposalStatus
	}
}
