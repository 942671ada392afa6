// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "fmt"

// TravelTime is a derived road travel-time estimate for one route.
// The decomposed Hours and Minutes components are kept next to the
// raw TotalHours so display formatting needs no recomputation.
type TravelTime struct {
	DistanceKM float64 `json:"distance_km"`
	TotalHours float64 `json:"total_hours"`
	Hours      int     `json:"hours"`
	Minutes    int     `json:"minutes"`
}

// Format renders the estimate with the fixed pt-MZ wording:
//   - more than 24 hours: "<days> dia(s) e <remainingHours>h",
//   - up to 24 hours: "<hours>h <minutes>min",
//   - less than one hour: "<minutes> minutos".
func (t TravelTime) Format() string {
	switch {
	case t.Hours > 24:
		days := t.Hours / 24
		rem := t.Hours % 24
		dia := "dia"
		if days > 1 {
			dia = "dias"
		}
		return fmt.Sprintf("%d %s e %dh", days, dia, rem)
	case t.Hours > 0:
		return fmt.Sprintf("%dh %dmin", t.Hours, t.Minutes)
	default:
		return fmt.Sprintf("%d minutos", t.Minutes)
	}
}

// LongTrip reports whether the trip is long enough that the UI should
// advise planning rest stops.
func (t TravelTime) LongTrip() bool {
	return t.Hours > 8
}

// VeryLongTrip reports whether the trip spans more than a day and the
// UI should advise an overnight stop.
func (t TravelTime) VeryLongTrip() bool {
	return t.Hours > 24
}
