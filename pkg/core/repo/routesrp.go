// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/mova-mz/mova-core/pkg/core/model"
)

type RoutesConnQueryer interface {
	RoutesQueryer
}

type RoutesTxQueryer interface {
	RoutesQueryer

	// Save upserts one distance-table entry, keyed by its
	// origin/destination pair.
	Save(ctx context.Context, r model.Route) error
}

// RoutesQueryer exposes the geocoded distance table. Lookups are
// direction-insensitive: LookupDistance must consult both (origin,
// destination) and (destination, origin) orderings. An absent pair
// yields a not-found error.
type RoutesQueryer interface {
	LookupDistance(ctx context.Context, origin, destination string) (float64, error)
	List(ctx context.Context) ([]model.Route, error)
}

type Routes interface {
	Conn(Conn) RoutesConnQueryer
	Tx(Tx) RoutesTxQueryer
}
