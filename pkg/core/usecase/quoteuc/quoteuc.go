// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package quoteuc contains the quotes UseCase which derives transport
// price and travel-time estimates for a route, weight, and the cargo
// rate table. Three use cases are supported:
//  1. Comparing banded price estimates across all cargo types,
//  2. Producing the simplified bar-chart price ranking,
//  3. Rendering a shareable quote message.
//
// All derivations are deterministic; the only external inputs are the
// persisted distance and cargo-rate tables.
package quoteuc

import (
	"context"
	"fmt"
	"strings"

	"github.com/mova-mz/mova-core/pkg/core/model"
	"github.com/mova-mz/mova-core/pkg/core/repo"
)

// UseCase represents a quotes use case. It holds a database
// connection pool and the routes/cargos repository instances (to be
// guided with the DB pool).
type UseCase struct {
	pool     repo.Pool
	routesrp repo.Routes
	cargosrp repo.Cargos
}

// New instantiates a quotes use case. All parameters are required and
// passed individually, so the caller has to provision them and
// whenever they change, the caller will notice and fix them due to a
// compilation error.
func New(p repo.Pool, r repo.Routes, c repo.Cargos) *UseCase {
	return &UseCase{pool: p, routesrp: r, cargosrp: c}
}

// Compare derives the ranked set of banded price estimates for
// transporting the given weight between origin and destination, one
// quote per cargo-rate table entry, sorted ascending by average
// price. Insufficient input (blank origin/destination or a weight
// which does not parse to a finite positive number) yields an empty
// comparison with no error and no distance lookup at all; callers
// treat it as "nothing to show yet".
func (qt *UseCase) Compare(
	ctx context.Context, origin, destination, weight string,
) (cmp model.Comparison, err error) {
	w, ok := ParseWeight(weight)
	origin, destination = trim(origin), trim(destination)
	if !ok || origin == "" || destination == "" {
		return model.Comparison{}, nil
	}
	err = qt.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		distance, cargos, err := qt.lookup(ctx, c, origin, destination)
		if err != nil {
			return err
		}
		cmp = CompareQuotes(distance, w, cargos)
		return nil
	})
	if err != nil {
		return model.Comparison{}, err
	}
	return cmp, nil
}

// Chart derives the simplified single-price ranking for the bar-chart
// visualization, sorted ascending, flagging the entry matching the
// selected cargo type identifier (if any). Input validation follows
// the Compare rules.
func (qt *UseCase) Chart(
	ctx context.Context, origin, destination, weight, selectedID string,
) (bars []model.ChartBar, err error) {
	w, ok := ParseWeight(weight)
	origin, destination = trim(origin), trim(destination)
	if !ok || origin == "" || destination == "" {
		return nil, nil
	}
	err = qt.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		distance, cargos, err := qt.lookup(ctx, c, origin, destination)
		if err != nil {
			return err
		}
		bars = ChartQuotes(distance, w, cargos, selectedID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bars, nil
}

// Routes lists the known distance-table entries, ordered by their
// origin/destination pair. The location selectors of the estimation
// forms are populated from this list.
func (qt *UseCase) Routes(
	ctx context.Context,
) (routes []model.Route, err error) {
	err = qt.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		routes, err = qt.routesrp.Conn(c).List(ctx)
		if err != nil {
			return fmt.Errorf("listing routes: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return routes, nil
}

func (qt *UseCase) lookup(
	ctx context.Context, c repo.Conn, origin, destination string,
) (distance float64, cargos []model.CargoType, err error) {
	rq := qt.routesrp.Conn(c)
	distance, err = rq.LookupDistance(ctx, origin, destination)
	if err != nil {
		return 0, nil, fmt.Errorf(
			"looking up distance %q to %q: %w", origin, destination, err,
		)
	}
	cargos, err = qt.cargosrp.Conn(c).List(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("listing cargo rates: %w", err)
	}
	return distance, cargos, nil
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
