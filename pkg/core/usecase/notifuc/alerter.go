// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package notifuc

import (
	"context"

	"github.com/mova-mz/mova-core/pkg/core/model"
)

// Alerter is the injected presentation side effect which announces a
// freshly added notification (a sound, a transient toast, a local
// push). It is strictly best effort: the aggregator logs and swallows
// its errors, so a failing alert can never interrupt list mutation.
type Alerter interface {
	Alert(ctx context.Context, n model.Notification) error
}
