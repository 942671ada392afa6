// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// CargoType models a category of agricultural freight with its own
// transport pricing rate. The Rate unit is MZN per kilometer per
// tonne, so a base price is computed as Rate * distance * weight.
type CargoType struct {
	ID    string  `json:"id" gorm:"primaryKey;column:id"`
	Label string  `json:"label"`
	Rate  float64 `json:"rate"`

	// Position keeps the presentation order of the rate table, also
	// used as the stable tie-break order when quotes share the same
	// average price.
	Position int `json:"-"`
}

// Quote is a derived price estimate for transporting a given weight of
// one cargo type over a given route. Quotes are never persisted.
// PriceMin <= PriceAvg <= PriceMax holds for every quote.
type Quote struct {
	Cargo        CargoType `json:"cargo"`
	DistanceKM   float64   `json:"distance_km"`
	WeightTonnes float64   `json:"weight_tonnes"`
	PriceMin     float64   `json:"price_min"`
	PriceMax     float64   `json:"price_max"`
	PriceAvg     float64   `json:"price_avg"`
}

// Comparison is the ranked set of quotes for one route/weight pair,
// sorted ascending by average price.
type Comparison struct {
	Quotes []Quote `json:"quotes"`
}

// Empty reports whether the comparison carries no quotes, either
// because the input was insufficient or the rate table was empty.
func (c Comparison) Empty() bool {
	return len(c.Quotes) == 0
}

// Cheapest returns the lowest-average-price quote, which is the first
// entry since Quotes is sorted ascending. Ok is false for an empty
// comparison.
func (c Comparison) Cheapest() (q Quote, ok bool) {
	if c.Empty() {
		return Quote{}, false
	}
	return c.Quotes[0], true
}

// MostExpensive returns the highest-average-price quote, which is the
// last entry since Quotes is sorted ascending. Ok is false for an
// empty comparison.
func (c Comparison) MostExpensive() (q Quote, ok bool) {
	if c.Empty() {
		return Quote{}, false
	}
	return c.Quotes[len(c.Quotes)-1], true
}

// Gap returns the numeric difference between the most expensive and
// the cheapest average prices, or zero for an empty comparison.
func (c Comparison) Gap() float64 {
	if c.Empty() {
		return 0
	}
	return c.Quotes[len(c.Quotes)-1].PriceAvg - c.Quotes[0].PriceAvg
}

// ChartBar is the simplified, single-price variant of a quote used by
// the bar-chart visualization. Selected flags the bar matching the
// caller's currently chosen cargo type.
type ChartBar struct {
	Cargo    CargoType `json:"cargo"`
	Price    float64   `json:"price"`
	Selected bool      `json:"selected"`
}
