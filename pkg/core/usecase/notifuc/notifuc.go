// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package notifuc contains the notifications UseCase, the in-memory
// aggregator which converts marketplace change events into a bounded,
// newest-first list of user-facing notifications. Supported use
// cases:
//  1. Collecting notifications from the change-event stream,
//  2. Listing them together with the unread counter,
//  3. Marking one notification as read,
//  4. Clearing the whole list.
package notifuc

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/mova-mz/mova-core/pkg/core/event"
	"github.com/mova-mz/mova-core/pkg/core/log"
	"github.com/mova-mz/mova-core/pkg/core/model"
)

// maxEntries bounds the aggregator list. After every insertion the
// list is truncated to this many most-recent entries.
const maxEntries = 50

// UseCase represents the notifications aggregator. It owns the
// notification list exclusively; other layers only read snapshots and
// invoke the exported mutation methods. Handlers run on goroutines
// owned by the stream transport, so the list is guarded by a mutex.
type UseCase struct {
	stream  event.Stream
	alerter Alerter

	mu     sync.Mutex
	notifs []model.Notification // newest first
	unsubs []event.Unsubscribe
	active bool
}

// New instantiates a notifications use case, subscribed to nothing
// until Activate is called. The stream is a required parameter while
// the alerter (and other optional parameters) may be passed as
// functional options.
func New(s event.Stream, opts ...Option) (*UseCase, error) {
	uc := &UseCase{stream: s}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	return uc, nil
}

// Activate subscribes the aggregator to all notification-producing
// change-event channels. Each subscription is independent, so a
// malfunction of one channel cannot stop delivery on the others.
// If any registration fails, the already registered ones are released
// and an error is returned. Activating an active aggregator is a
// no-op. If the aggregator is deactivated while the registration loop
// is still running, the loop stops, releases the subscription which it
// just obtained, and returns without an error (the deactivation wins).
func (nf *UseCase) Activate(ctx context.Context) error {
	nf.mu.Lock()
	if nf.active {
		nf.mu.Unlock()
		return nil
	}
	nf.active = true
	nf.mu.Unlock()
	for _, s := range []struct {
		table string
		op    event.Op
		h     event.Handler
	}{
		{event.TableProposals, event.OpInsert, nf.onProposalCreated},
		{event.TableProposals, event.OpUpdate, nf.onProposalUpdated},
		{event.TableMessages, event.OpInsert, nf.onMessageCreated},
		{event.TableRequests, event.OpInsert, nf.onRequestCreated},
		{event.TableRequests, event.OpUpdate, nf.onRequestUpdated},
	} {
		u, err := nf.stream.Subscribe(ctx, s.table, s.op, s.h)
		if err != nil {
			nf.Deactivate()
			return fmt.Errorf(
				"subscribing to %s %s events: %w", s.table, s.op, err,
			)
		}
		nf.mu.Lock()
		if !nf.active {
			// deactivated concurrently; this subscription was obtained
			// after the drain, so it must be released right here
			nf.mu.Unlock()
			u()
			return nil
		}
		nf.unsubs = append(nf.unsubs, u)
		nf.mu.Unlock()
	}
	return nil
}

// Deactivate releases all registered subscriptions together and bars
// any further event-driven list mutation. Events which are already
// in flight observe the deactivated state and are dropped, so the
// list can no longer change after Deactivate returns (except through
// the explicit user-facing mutation methods). Deactivating an
// inactive aggregator is a no-op.
func (nf *UseCase) Deactivate() {
	nf.mu.Lock()
	if !nf.active {
		nf.mu.Unlock()
		return
	}
	nf.active = false
	unsubs := nf.unsubs
	nf.unsubs = nil
	nf.mu.Unlock()
	for _, u := range unsubs {
		u()
	}
}

// AddNotification constructs a notification with a fresh identifier
// and the current timestamp, prepends it to the list, and truncates
// the list to the most recent entries. A best-effort alert side
// effect is triggered afterwards; its failure is logged and swallowed
// and never interrupts the list mutation.
func (nf *UseCase) AddNotification(
	ctx context.Context,
	kind model.NotificationKind,
	title, description string,
) {
	nf.add(ctx, false, kind, title, description)
}

// deliver is the event-handler entry point to add. It refuses to
// mutate the list once the aggregator is deactivated.
func (nf *UseCase) deliver(
	ctx context.Context,
	kind model.NotificationKind,
	title, description string,
) {
	nf.add(ctx, true, kind, title, description)
}

func (nf *UseCase) add(
	ctx context.Context,
	requireActive bool,
	kind model.NotificationKind,
	title, description string,
) {
	n := model.NewNotification(kind, title, description)
	nf.mu.Lock()
	if requireActive && !nf.active {
		nf.mu.Unlock()
		return
	}
	nf.notifs = append(nf.notifs, model.Notification{})
	copy(nf.notifs[1:], nf.notifs)
	nf.notifs[0] = n
	if len(nf.notifs) > maxEntries {
		nf.notifs = nf.notifs[:maxEntries]
	}
	nf.mu.Unlock()
	if nf.alerter == nil {
		return
	}
	if err := nf.alerter.Alert(ctx, n); err != nil {
		log.Warn(
			ctx, "notification alert failed",
			log.Kind(kind), log.Err("error", err),
		)
	}
}

// MarkAsRead sets the read flag of the nid notification. The flag
// only transitions from unread to read, so repeated calls are
// idempotent. An absent identifier is a no-op, not an error.
func (nf *UseCase) MarkAsRead(nid uuid.UUID) {
	nf.mu.Lock()
	defer nf.mu.Unlock()
	for i := range nf.notifs {
		if nf.notifs[i].ID == nid {
			nf.notifs[i].Read = true
			return
		}
	}
}

// ClearAll empties the notification list unconditionally.
func (nf *UseCase) ClearAll() {
	nf.mu.Lock()
	defer nf.mu.Unlock()
	nf.notifs = nil
}

// UnreadCount returns the number of notifications which are not
// marked as read yet.
func (nf *UseCase) UnreadCount() int {
	nf.mu.Lock()
	defer nf.mu.Unlock()
	count := 0
	for i := range nf.notifs {
		if !nf.notifs[i].Read {
			count++
		}
	}
	return count
}

// Notifications returns a newest-first snapshot of the list. The
// returned slice is a copy, so callers may not mutate the aggregator
// state through it.
func (nf *UseCase) Notifications() []model.Notification {
	nf.mu.Lock()
	defer nf.mu.Unlock()
	snapshot := make([]model.Notification, len(nf.notifs))
	copy(snapshot, nf.notifs)
	return snapshot
}
