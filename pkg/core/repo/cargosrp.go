// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/mova-mz/mova-core/pkg/core/model"
)

type CargosConnQueryer interface {
	CargosQueryer
}

type CargosTxQueryer interface {
	CargosQueryer

	// Save upserts one cargo-rate entry, keyed by its identifier.
	Save(ctx context.Context, c model.CargoType) error
}

// CargosQueryer exposes the cargo-rate table. List returns the rate
// table in its fixed presentation order (the Position column), which
// is also the stable tie-break order for equal-priced quotes.
type CargosQueryer interface {
	List(ctx context.Context) ([]model.CargoType, error)
}

type Cargos interface {
	Conn(Conn) CargosConnQueryer
	Tx(Tx) CargosTxQueryer
}
