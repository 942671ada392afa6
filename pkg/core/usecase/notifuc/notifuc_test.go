// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package notifuc_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/mova-mz/mova-core/pkg/core/event"
	"github.com/mova-mz/mova-core/pkg/core/model"
	"github.com/mova-mz/mova-core/pkg/core/usecase/notifuc"
	"github.com/stretchr/testify/require"
)

// fakeStream is an in-memory event.Stream which delivers emitted
// envelopes synchronously to the registered handlers.
type fakeStream struct {
	mu         sync.Mutex
	handlers   map[string]event.Handler
	released   map[string]int
	failTables map[string]error
}

func newFakeStream() *fakeStream {
	return &fakeStream{
		handlers:   make(map[string]event.Handler),
		released:   make(map[string]int),
		failTables: make(map[string]error),
	}
}

func key(table string, op event.Op) string {
	return table + "/" + op.String()
}

func (fs *fakeStream) Subscribe(
	_ context.Context, table string, op event.Op, h event.Handler,
) (event.Unsubscribe, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if err := fs.failTables[table]; err != nil {
		return nil, err
	}
	k := key(table, op)
	fs.handlers[k] = h
	return func() {
		fs.mu.Lock()
		defer fs.mu.Unlock()
		fs.released[k]++
		delete(fs.handlers, k)
	}, nil
}

// emit marshals payload as the envelope's new-row contents and hands
// it to the matching handler, returning the handler for later use.
func (fs *fakeStream) emit(
	t *testing.T, table string, op event.Op, payload any,
) event.Handler {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err, "cannot marshal payload")
	fs.mu.Lock()
	h := fs.handlers[key(table, op)]
	fs.mu.Unlock()
	require.NotNil(t, h, "no handler for %s %s", table, op)
	h(context.Background(), event.Envelope{Table: table, Op: op, New: raw})
	return h
}

func activated(t *testing.T, opts ...notifuc.Option) (
	*notifuc.UseCase, *fakeStream,
) {
	t.Helper()
	fs := newFakeStream()
	uc, err := notifuc.New(fs, opts...)
	require.NoError(t, err, "cannot instantiate use case")
	require.NoError(t, uc.Activate(context.Background()))
	return uc, fs
}

func TestBoundedNewestFirstList(t *testing.T) {
	uc, _ := activated(t)
	ctx := context.Background()
	for i := 1; i <= 60; i++ {
		uc.AddNotification(
			ctx, model.NotificationKindStatus,
			fmt.Sprintf("n%d", i), "",
		)
	}
	ns := uc.Notifications()
	require.Len(t, ns, 50, "list must be truncated to 50 entries")
	for i, n := range ns {
		require.Equal(
			t, fmt.Sprintf("n%d", 60-i), n.Title,
			"entries must be ordered newest first",
		)
	}
	require.Equal(t, 50, uc.UnreadCount())
}

func TestMarkAsRead(t *testing.T) {
	uc, _ := activated(t)
	ctx := context.Background()
	uc.AddNotification(ctx, model.NotificationKindMessage, "a", "")
	uc.AddNotification(ctx, model.NotificationKindMessage, "b", "")
	nid := uc.Notifications()[1].ID

	uc.MarkAsRead(nid)
	require.Equal(t, 1, uc.UnreadCount())
	require.True(t, uc.Notifications()[1].Read)

	// idempotent: a second call leaves read=true
	uc.MarkAsRead(nid)
	require.Equal(t, 1, uc.UnreadCount())
	require.True(t, uc.Notifications()[1].Read)

	// absent id is a no-op
	before := uc.Notifications()
	uc.MarkAsRead(uuid.New())
	require.Equal(t, before, uc.Notifications())
}

func TestClearAll(t *testing.T) {
	uc, _ := activated(t)
	ctx := context.Background()
	uc.AddNotification(ctx, model.NotificationKindStatus, "a", "")
	uc.AddNotification(ctx, model.NotificationKindStatus, "b", "")
	uc.ClearAll()
	require.Empty(t, uc.Notifications())
	require.Zero(t, uc.UnreadCount())
}

type failingAlerter struct {
	calls int
}

func (fa *failingAlerter) Alert(context.Context, model.Notification) error {
	fa.calls++
	return errors.New("autoplay blocked")
}

func TestAlerterFailureNeverBlocksMutation(t *testing.T) {
	fa := &failingAlerter{}
	uc, _ := activated(t, notifuc.WithAlerter(fa))
	uc.AddNotification(
		context.Background(), model.NotificationKindProposal, "a", "",
	)
	require.Equal(t, 1, fa.calls, "alerter must be attempted")
	require.Len(t, uc.Notifications(), 1, "mutation must survive")
}

func TestEventMapping(t *testing.T) {
	prop := func(status string) map[string]any {
		return map[string]any{
			"id":               uuid.New(),
			"request_id":       uuid.New(),
			"transporter_name": "Transportes Limpopo",
			"price":            12345.67,
			"status":           status,
		}
	}
	for _, tc := range []struct {
		name    string
		table   string
		op      event.Op
		payload any
		kind    model.NotificationKind
		title   string
		desc    string
	}{
		{
			name:    "proposal created",
			table:   event.TableProposals,
			op:      event.OpInsert,
			payload: prop("pending"),
			kind:    model.NotificationKindProposal,
			title:   "Nova proposta recebida",
			desc:    "Proposta de 12.345,67 MZN para o seu pedido de transporte",
		},
		{
			name:    "proposal paid",
			table:   event.TableProposals,
			op:      event.OpUpdate,
			payload: prop("paid"),
			kind:    model.NotificationKindStatus,
			title:   "Pagamento enviado",
			desc:    "O pagamento foi enviado e aguarda confirmação do transportador",
		},
		{
			name:    "proposal confirmed",
			table:   event.TableProposals,
			op:      event.OpUpdate,
			payload: prop("confirmed"),
			kind:    model.NotificationKindStatus,
			title:   "Pagamento confirmado",
			desc:    "O transportador confirmou a recepção do pagamento",
		},
		{
			name:  "message created",
			table: event.TableMessages,
			op:    event.OpInsert,
			payload: model.Message{
				ID:         uuid.New(),
				SenderName: "Cooperativa de Manica",
				Content:    strings.Repeat("m", 80),
			},
			kind:  model.NotificationKindMessage,
			title: "Nova mensagem de Cooperativa de Manica",
			desc:  strings.Repeat("m", 50) + "...",
		},
		{
			name:  "request created",
			table: event.TableRequests,
			op:    event.OpInsert,
			payload: map[string]any{
				"id":     uuid.New(),
				"title":  "Milho para Beira",
				"status": "open",
			},
			kind:  model.NotificationKindStatus,
			title: "Novo pedido de transporte",
			desc:  `Pedido "Milho para Beira" publicado`,
		},
		{
			name:  "request started",
			table: event.TableRequests,
			op:    event.OpUpdate,
			payload: map[string]any{
				"id":     uuid.New(),
				"title":  "Milho para Beira",
				"status": "in_progress",
			},
			kind:  model.NotificationKindStatus,
			title: "Transporte iniciado",
			desc:  "O transportador iniciou a viagem",
		},
		{
			name:  "request completed",
			table: event.TableRequests,
			op:    event.OpUpdate,
			payload: map[string]any{
				"id":     uuid.New(),
				"title":  "Milho para Beira",
				"status": "completed",
			},
			kind:  model.NotificationKindStatus,
			title: "Transporte concluído",
			desc:  "A carga chegou ao destino",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			uc, fs := activated(t)
			fs.emit(t, tc.table, tc.op, tc.payload)
			ns := uc.Notifications()
			require.Len(t, ns, 1)
			require.Equal(t, tc.kind, ns[0].Kind)
			require.Equal(t, tc.title, ns[0].Title)
			require.Equal(t, tc.desc, ns[0].Description)
			require.False(t, ns[0].Read)
			require.NotEqual(t, uuid.Nil, ns[0].ID)
		})
	}
}

func TestUnmatchedEventsAreIgnored(t *testing.T) {
	for _, tc := range []struct {
		name    string
		table   string
		op      event.Op
		payload any
	}{
		{
			name:  "proposal update with unmapped status",
			table: event.TableProposals,
			op:    event.OpUpdate,
			payload: map[string]any{
				"id": uuid.New(), "price": 100.0, "status": "rejected",
			},
		},
		{
			name:  "request update with unmapped status",
			table: event.TableRequests,
			op:    event.OpUpdate,
			payload: map[string]any{
				"id": uuid.New(), "title": "x", "status": "cancelled",
			},
		},
		{
			name:    "undecodable proposal payload",
			table:   event.TableProposals,
			op:      event.OpInsert,
			payload: map[string]any{"id": "not-a-uuid"},
		},
		{
			name:    "unknown status string",
			table:   event.TableRequests,
			op:      event.OpUpdate,
			payload: map[string]any{"id": uuid.New(), "status": "exploded"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			uc, fs := activated(t)
			fs.emit(t, tc.table, tc.op, tc.payload)
			require.Empty(
				t, uc.Notifications(),
				"unmatched events must produce no notification",
			)
		})
	}
}

func TestDeactivateStopsDelivery(t *testing.T) {
	uc, fs := activated(t)
	h := fs.emit(
		t, event.TableMessages, event.OpInsert,
		model.Message{ID: uuid.New(), SenderName: "a", Content: "olá"},
	)
	require.Len(t, uc.Notifications(), 1)

	uc.Deactivate()
	require.Len(t, fs.released, 5, "all subscriptions must be released")

	// a queued in-flight event arriving after deactivation
	raw, err := json.Marshal(
		model.Message{ID: uuid.New(), SenderName: "b", Content: "tarde"},
	)
	require.NoError(t, err)
	h(context.Background(), event.Envelope{
		Table: event.TableMessages, Op: event.OpInsert, New: raw,
	})
	require.Len(
		t, uc.Notifications(), 1,
		"no mutation may happen after deactivation",
	)

	// repeated deactivation is a no-op
	uc.Deactivate()
}

// deactivatingStream deactivates the use case from within its n-th
// Subscribe call, modeling a shutdown racing the activation loop. It
// is mutex-free since the test drives it from a single goroutine.
type deactivatingStream struct {
	uc         *notifuc.UseCase
	after      int
	subscribed int
	released   int
}

func (ds *deactivatingStream) Subscribe(
	context.Context, string, event.Op, event.Handler,
) (event.Unsubscribe, error) {
	ds.subscribed++
	if ds.subscribed == ds.after {
		ds.uc.Deactivate()
	}
	return func() { ds.released++ }, nil
}

func TestDeactivateDuringActivationReleasesEverything(t *testing.T) {
	ds := &deactivatingStream{after: 2}
	uc, err := notifuc.New(ds)
	require.NoError(t, err)
	ds.uc = uc
	require.NoError(t, uc.Activate(context.Background()))
	require.Equal(
		t, 2, ds.subscribed,
		"the registration loop must stop once deactivated",
	)
	require.Equal(
		t, ds.subscribed, ds.released,
		"every obtained subscription must be released",
	)
}

func TestActivateRollsBackOnSubscribeError(t *testing.T) {
	fs := newFakeStream()
	fs.failTables[event.TableMessages] = errors.New("broker down")
	uc, err := notifuc.New(fs)
	require.NoError(t, err)
	err = uc.Activate(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "broker down")
	require.Empty(
		t, fs.handlers,
		"partially registered subscriptions must be released",
	)
}
