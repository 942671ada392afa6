// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package quoteuc

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/mova-mz/mova-core/pkg/core/model"
)

// Pricing policy constants. The banded estimate spreads ±15% around
// the base price with fixed floors against degenerate near-zero
// quotes for short or light shipments. The chart variant uses one
// floored price per cargo type; its floor equals the band floors'
// average but is an independent constant and must stay so.
const (
	bandLowFactor  = 0.85
	bandHighFactor = 1.15

	minFloorMZN   = 5000
	maxFloorMZN   = 7500
	chartFloorMZN = 6250
)

// ParseWeight parses a user-supplied weight string as a finite
// positive decimal number of tonnes. Ok is false for blank strings
// and anything non-numeric, non-finite, or not strictly positive.
func ParseWeight(s string) (w float64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	w, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(w, 0) || math.IsNaN(w) || w <= 0 {
		return 0, false
	}
	return w, true
}

// CompareQuotes derives one banded quote per cargo type and returns
// them sorted ascending by average price. The sort is stable, so
// equal-priced cargo types keep their rate-table order. For every
// quote, PriceMin <= PriceAvg <= PriceMax.
func CompareQuotes(
	distanceKM, weightTonnes float64, cargos []model.CargoType,
) model.Comparison {
	if len(cargos) == 0 {
		return model.Comparison{}
	}
	quotes := make([]model.Quote, 0, len(cargos))
	for _, cargo := range cargos {
		base := cargo.Rate * distanceKM * weightTonnes
		min := math.Max(base*bandLowFactor, minFloorMZN)
		max := math.Max(base*bandHighFactor, maxFloorMZN)
		quotes = append(quotes, model.Quote{
			Cargo:        cargo,
			DistanceKM:   distanceKM,
			WeightTonnes: weightTonnes,
			PriceMin:     min,
			PriceMax:     max,
			PriceAvg:     (min + max) / 2,
		})
	}
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].PriceAvg < quotes[j].PriceAvg
	})
	return model.Comparison{Quotes: quotes}
}

// ChartQuotes derives the simplified one-price-per-cargo-type ranking
// used by the bar chart, sorted ascending (stable), flagging the
// entry whose cargo type matches selectedID.
func ChartQuotes(
	distanceKM, weightTonnes float64,
	cargos []model.CargoType,
	selectedID string,
) []model.ChartBar {
	if len(cargos) == 0 {
		return nil
	}
	bars := make([]model.ChartBar, 0, len(cargos))
	for _, cargo := range cargos {
		base := cargo.Rate * distanceKM * weightTonnes
		bars = append(bars, model.ChartBar{
			Cargo:    cargo,
			Price:    math.Max(base, chartFloorMZN),
			Selected: cargo.ID == selectedID,
		})
	}
	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].Price < bars[j].Price
	})
	return bars
}
