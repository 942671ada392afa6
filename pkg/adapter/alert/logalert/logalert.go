// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package logalert provides the server-side Alerter realization. The
// browser-bound alert channels (sound, toast, local push) belong to
// the web frontend; on the server each added notification is simply
// announced on the structured log, keeping the side-effect port
// exercised and observable.
package logalert

import (
	"context"
	"log/slog"

	"github.com/mova-mz/mova-core/pkg/core/log"
	"github.com/mova-mz/mova-core/pkg/core/model"
)

type Alerter struct {
}

func New() *Alerter {
	return &Alerter{}
}

// Alert announces the added notification at the info level. It never
// fails; the error return exists to satisfy the notifuc.Alerter port.
func (a *Alerter) Alert(ctx context.Context, n model.Notification) error {
	log.Info(
		ctx, "notification added",
		log.Kind(n.Kind),
		slog.String("title", n.Title),
		slog.String("nid", n.ID.String()),
	)
	return nil
}
