// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package notifuc

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/mova-mz/mova-core/pkg/core/event"
	"github.com/mova-mz/mova-core/pkg/core/log"
	"github.com/mova-mz/mova-core/pkg/core/model"
)

// messagePreviewLen is the number of leading characters of a chat
// message which are shown in its notification preview.
const messagePreviewLen = 50

// The handlers below form the closed mapping from change events to
// notifications. Event payloads which cannot be decoded, as well as
// table/operation/status combinations without a mapping entry,
// produce no notification and are dropped silently (logged at debug
// level at most).

func (nf *UseCase) onProposalCreated(ctx context.Context, e event.Envelope) {
	p, err := event.Decode[model.Proposal](e.New)
	if err != nil {
		nf.dropped(ctx, e, err)
		return
	}
	nf.deliver(
		ctx, model.NotificationKindProposal,
		"Nova proposta recebida",
		fmt.Sprintf(
			"Proposta de %s para o seu pedido de transporte",
			model.FormatMZN(p.Price),
		),
	)
}

func (nf *UseCase) onProposalUpdated(ctx context.Context, e event.Envelope) {
	p, err := event.Decode[model.Proposal](e.New)
	if err != nil {
		nf.dropped(ctx, e, err)
		return
	}
	switch p.Status {
	case model.ProposalStatusPaid:
		nf.deliver(
			ctx, model.NotificationKindStatus,
			"Pagamento enviado",
			"O pagamento foi enviado e aguarda confirmação do transportador",
		)
	case model.ProposalStatusConfirmed:
		nf.deliver(
			ctx, model.NotificationKindStatus,
			"Pagamento confirmado",
			"O transportador confirmou a recepção do pagamento",
		)
	}
}

func (nf *UseCase) onMessageCreated(ctx context.Context, e event.Envelope) {
	m, err := event.Decode[model.Message](e.New)
	if err != nil {
		nf.dropped(ctx, e, err)
		return
	}
	nf.deliver(
		ctx, model.NotificationKindMessage,
		fmt.Sprintf("Nova mensagem de %s", m.SenderName),
		preview(m.Content),
	)
}

func (nf *UseCase) onRequestCreated(ctx context.Context, e event.Envelope) {
	r, err := event.Decode[model.TransportRequest](e.New)
	if err != nil {
		nf.dropped(ctx, e, err)
		return
	}
	nf.deliver(
		ctx, model.NotificationKindStatus,
		"Novo pedido de transporte",
		fmt.Sprintf("Pedido %q publicado", r.Title),
	)
}

func (nf *UseCase) onRequestUpdated(ctx context.Context, e event.Envelope) {
	r, err := event.Decode[model.TransportRequest](e.New)
	if err != nil {
		nf.dropped(ctx, e, err)
		return
	}
	switch r.Status {
	case model.RequestStatusInProgress:
		nf.deliver(
			ctx, model.NotificationKindStatus,
			"Transporte iniciado",
			"O transportador iniciou a viagem",
		)
	case model.RequestStatusCompleted:
		nf.deliver(
			ctx, model.NotificationKindStatus,
			"Transporte concluído",
			"A carga chegou ao destino",
		)
	}
}

func (nf *UseCase) dropped(ctx context.Context, e event.Envelope, err error) {
	log.Debug(
		ctx, "dropping undecodable change event",
		log.Table(e.Table), log.Err("error", err),
	)
}

// preview truncates a message body to its first messagePreviewLen
// characters and appends an ellipsis marker.
func preview(content string) string {
	if utf8.RuneCountInString(content) > messagePreviewLen {
		content = string([]rune(content)[:messagePreviewLen])
	}
	return content + "..."
}
