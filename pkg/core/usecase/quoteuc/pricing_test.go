// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package quoteuc_test

import (
	"testing"

	"github.com/mova-mz/mova-core/pkg/core/model"
	"github.com/mova-mz/mova-core/pkg/core/usecase/quoteuc"
	"github.com/stretchr/testify/require"
)

func rateTable() []model.CargoType {
	return []model.CargoType{
		{ID: "milho", Label: "Milho", Rate: 2.5, Position: 1},
		{ID: "arroz", Label: "Arroz", Rate: 2.8, Position: 2},
		{ID: "caju", Label: "Castanha de Caju", Rate: 4.2, Position: 3},
		{ID: "algodao", Label: "Algodão", Rate: 3.1, Position: 4},
	}
}

func TestParseWeight(t *testing.T) {
	for _, tc := range []struct {
		in string
		w  float64
		ok bool
	}{
		{in: "10", w: 10, ok: true},
		{in: " 10.5 ", w: 10.5, ok: true},
		{in: "0.001", w: 0.001, ok: true},
		{in: ""},
		{in: "   "},
		{in: "abc"},
		{in: "-3"},
		{in: "0"},
		{in: "NaN"},
		{in: "+Inf"},
	} {
		t.Run(tc.in, func(t *testing.T) {
			w, ok := quoteuc.ParseWeight(tc.in)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				require.Equal(t, tc.w, w)
			}
		})
	}
}

func TestCompareQuotesOrderingInvariant(t *testing.T) {
	cmp := quoteuc.CompareQuotes(1190, 10, rateTable())
	require.Len(t, cmp.Quotes, 4)
	for i, q := range cmp.Quotes {
		require.LessOrEqual(t, q.PriceMin, q.PriceAvg, "min <= avg")
		require.LessOrEqual(t, q.PriceAvg, q.PriceMax, "avg <= max")
		if i > 0 {
			require.LessOrEqual(
				t, cmp.Quotes[i-1].PriceAvg, q.PriceAvg,
				"quotes must be sorted ascending by average",
			)
		}
	}
	cheapest, ok := cmp.Cheapest()
	require.True(t, ok)
	require.Equal(t, "milho", cheapest.Cargo.ID)
	dearest, ok := cmp.MostExpensive()
	require.True(t, ok)
	require.Equal(t, "caju", dearest.Cargo.ID)
	require.InDelta(
		t, dearest.PriceAvg-cheapest.PriceAvg, cmp.Gap(), 1e-9,
	)
}

func TestCompareQuotesBandMath(t *testing.T) {
	// base = 2.5 * 1000 * 10 = 25000, well above the floors
	cmp := quoteuc.CompareQuotes(1000, 10, []model.CargoType{
		{ID: "milho", Label: "Milho", Rate: 2.5},
	})
	require.Len(t, cmp.Quotes, 1)
	q := cmp.Quotes[0]
	require.InDelta(t, 21250.0, q.PriceMin, 1e-9)
	require.InDelta(t, 28750.0, q.PriceMax, 1e-9)
	require.InDelta(t, 25000.0, q.PriceAvg, 1e-9)
}

func TestCompareQuotesPriceFloor(t *testing.T) {
	// base = 1.0 * 20 * 1 = 20, far below both floors
	cmp := quoteuc.CompareQuotes(20, 1, []model.CargoType{
		{ID: "milho", Label: "Milho", Rate: 1.0},
	})
	require.Len(t, cmp.Quotes, 1)
	q := cmp.Quotes[0]
	require.Equal(t, 5000.0, q.PriceMin, "floored minimum")
	require.Equal(t, 7500.0, q.PriceMax, "floored maximum")
	require.Equal(t, 6250.0, q.PriceAvg)
}

func TestCompareQuotesStableTieBreak(t *testing.T) {
	// identical rates keep the rate-table order
	cmp := quoteuc.CompareQuotes(100, 1, []model.CargoType{
		{ID: "feijao", Label: "Feijão", Rate: 3.0, Position: 1},
		{ID: "soja", Label: "Soja", Rate: 3.0, Position: 2},
	})
	require.Equal(t, "feijao", cmp.Quotes[0].Cargo.ID)
	require.Equal(t, "soja", cmp.Quotes[1].Cargo.ID)
}

func TestCompareQuotesEmptyRateTable(t *testing.T) {
	cmp := quoteuc.CompareQuotes(100, 1, nil)
	require.True(t, cmp.Empty())
	_, ok := cmp.Cheapest()
	require.False(t, ok)
	_, ok = cmp.MostExpensive()
	require.False(t, ok)
	require.Zero(t, cmp.Gap())
}

func TestChartQuotes(t *testing.T) {
	bars := quoteuc.ChartQuotes(1190, 10, rateTable(), "arroz")
	require.Len(t, bars, 4)
	for i, b := range bars {
		if i > 0 {
			require.LessOrEqual(
				t, bars[i-1].Price, b.Price,
				"bars must be sorted ascending",
			)
		}
		require.Equal(t, b.Cargo.ID == "arroz", b.Selected)
	}
}

func TestChartQuotesFloor(t *testing.T) {
	// base = 1.0 * 20 * 1 = 20, below the chart floor
	bars := quoteuc.ChartQuotes(20, 1, []model.CargoType{
		{ID: "milho", Label: "Milho", Rate: 1.0},
	}, "")
	require.Len(t, bars, 1)
	require.Equal(t, 6250.0, bars[0].Price, "floored chart price")
	require.False(t, bars[0].Selected)
}
