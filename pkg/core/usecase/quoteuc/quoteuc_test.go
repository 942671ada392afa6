// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package quoteuc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mova-mz/mova-core/pkg/core/cerr"
	"github.com/mova-mz/mova-core/pkg/core/model"
	"github.com/mova-mz/mova-core/pkg/core/repo"
	"github.com/mova-mz/mova-core/pkg/core/usecase/quoteuc"
	"github.com/stretchr/testify/require"
)

type fakePool struct {
	conn fakeConn
}

func (p *fakePool) Conn(ctx context.Context, h repo.ConnHandler) error {
	return h(ctx, &p.conn)
}

func (p *fakePool) Close() error {
	return nil
}

type fakeConn struct{}

func (c *fakeConn) Exec(context.Context, string, ...any) (int64, error) {
	return 0, errors.New("not supported by fakeConn")
}

func (c *fakeConn) Query(context.Context, string, ...any) (repo.Rows, error) {
	return nil, errors.New("not supported by fakeConn")
}

func (c *fakeConn) Tx(context.Context, repo.TxHandler) error {
	return errors.New("not supported by fakeConn")
}

func (c *fakeConn) IsConn() {}

// fakeRoutes keeps the distance table in a map keyed by
// "origin|destination" and counts the performed lookups.
type fakeRoutes struct {
	distances map[string]float64
	table     []model.Route
	lookups   int
}

func (r *fakeRoutes) Conn(repo.Conn) repo.RoutesConnQueryer { return r }
func (r *fakeRoutes) Tx(repo.Tx) repo.RoutesTxQueryer       { return r }

func (r *fakeRoutes) LookupDistance(
	_ context.Context, origin, destination string,
) (float64, error) {
	r.lookups++
	if d, ok := r.distances[origin+"|"+destination]; ok {
		return d, nil
	}
	if d, ok := r.distances[destination+"|"+origin]; ok {
		return d, nil
	}
	return 0, cerr.NotFound(errors.New("route not found"))
}

func (r *fakeRoutes) List(context.Context) ([]model.Route, error) {
	return r.table, nil
}

func (r *fakeRoutes) Save(context.Context, model.Route) error {
	return nil
}

type fakeCargos struct {
	table []model.CargoType
	err   error
}

func (c *fakeCargos) Conn(repo.Conn) repo.CargosConnQueryer { return c }
func (c *fakeCargos) Tx(repo.Tx) repo.CargosTxQueryer       { return c }

func (c *fakeCargos) List(context.Context) ([]model.CargoType, error) {
	return c.table, c.err
}

func (c *fakeCargos) Save(context.Context, model.CargoType) error {
	return nil
}

func newQuotesUC(routes *fakeRoutes, cargos *fakeCargos) *quoteuc.UseCase {
	return quoteuc.New(&fakePool{}, routes, cargos)
}

func maputoBeira() *fakeRoutes {
	return &fakeRoutes{distances: map[string]float64{
		"Maputo|Beira": 1190,
	}}
}

func TestCompare(t *testing.T) {
	routes := maputoBeira()
	uc := newQuotesUC(routes, &fakeCargos{table: rateTable()})
	cmp, err := uc.Compare(context.Background(), "Maputo", "Beira", "10")
	require.NoError(t, err)
	require.Len(t, cmp.Quotes, 4)
	require.Equal(t, 1, routes.lookups)
	cheapest, ok := cmp.Cheapest()
	require.True(t, ok)
	require.Equal(t, "milho", cheapest.Cargo.ID)
	require.Equal(t, 1190.0, cheapest.DistanceKM)
	require.Equal(t, 10.0, cheapest.WeightTonnes)
}

func TestCompareReversedRoute(t *testing.T) {
	uc := newQuotesUC(maputoBeira(), &fakeCargos{table: rateTable()})
	cmp, err := uc.Compare(context.Background(), "Beira", "Maputo", "10")
	require.NoError(t, err)
	require.False(t, cmp.Empty(), "lookups must be direction-insensitive")
}

func TestCompareInsufficientInputShortCircuits(t *testing.T) {
	for _, tc := range []struct {
		name                        string
		origin, destination, weight string
	}{
		{name: "blank origin", destination: "Maputo", weight: "10"},
		{name: "blank destination", origin: "Maputo", weight: "10"},
		{name: "blank weight", origin: "Maputo", destination: "Beira"},
		{
			name:   "non-numeric weight",
			origin: "Maputo", destination: "Beira", weight: "dez",
		},
		{
			name:   "negative weight",
			origin: "Maputo", destination: "Beira", weight: "-4",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			routes := maputoBeira()
			uc := newQuotesUC(routes, &fakeCargos{table: rateTable()})
			cmp, err := uc.Compare(
				context.Background(),
				tc.origin, tc.destination, tc.weight,
			)
			require.NoError(t, err, "insufficient input is not an error")
			require.True(t, cmp.Empty())
			require.Zero(
				t, routes.lookups,
				"no distance lookup may happen for insufficient input",
			)
		})
	}
}

func TestCompareUnknownRoute(t *testing.T) {
	uc := newQuotesUC(maputoBeira(), &fakeCargos{table: rateTable()})
	_, err := uc.Compare(context.Background(), "Maputo", "Lisboa", "10")
	require.Error(t, err)
	var ce *cerr.Error
	require.ErrorAs(t, err, &ce)
	require.Equal(t, 404, ce.HTTPStatusCode)
}

func TestCompareRateTableError(t *testing.T) {
	uc := newQuotesUC(
		maputoBeira(), &fakeCargos{err: errors.New("db down")},
	)
	_, err := uc.Compare(context.Background(), "Maputo", "Beira", "10")
	require.Error(t, err)
	require.Contains(t, err.Error(), "db down")
}

func TestChart(t *testing.T) {
	routes := maputoBeira()
	uc := newQuotesUC(routes, &fakeCargos{table: rateTable()})
	bars, err := uc.Chart(
		context.Background(), "Maputo", "Beira", "10", "caju",
	)
	require.NoError(t, err)
	require.Len(t, bars, 4)
	require.Equal(t, 1, routes.lookups)
	selected := 0
	for _, b := range bars {
		if b.Selected {
			selected++
			require.Equal(t, "caju", b.Cargo.ID)
		}
	}
	require.Equal(t, 1, selected, "exactly one bar must be flagged")
}

func TestRoutes(t *testing.T) {
	routes := maputoBeira()
	routes.table = []model.Route{
		{Origin: "Beira", Destination: "Nampula", DistanceKM: 1315},
		{Origin: "Maputo", Destination: "Beira", DistanceKM: 1190},
	}
	uc := newQuotesUC(routes, &fakeCargos{})
	got, err := uc.Routes(context.Background())
	require.NoError(t, err)
	require.Equal(t, routes.table, got)
}

func TestChartInsufficientInput(t *testing.T) {
	routes := maputoBeira()
	uc := newQuotesUC(routes, &fakeCargos{table: rateTable()})
	bars, err := uc.Chart(context.Background(), "", "Beira", "10", "")
	require.NoError(t, err)
	require.Empty(t, bars)
	require.Zero(t, routes.lookups)
}
