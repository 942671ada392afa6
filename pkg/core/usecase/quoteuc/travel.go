// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package quoteuc

import (
	"math"

	"github.com/mova-mz/mova-core/pkg/core/model"
)

// AverageSpeedKMH is the effective truck speed over Mozambican roads,
// a policy constant which already accounts for stops and road
// conditions rather than a pure kinematic figure.
const AverageSpeedKMH = 50

// EstimateTravelTime derives the travel-time estimate for a road
// distance in kilometers. The minutes component is rounded and a full
// carry (60 minutes) rolls over into the hours component.
func EstimateTravelTime(distanceKM float64) model.TravelTime {
	total := distanceKM / AverageSpeedKMH
	hours := int(math.Floor(total))
	minutes := int(math.Round((total - math.Floor(total)) * 60))
	if minutes == 60 {
		hours++
		minutes = 0
	}
	return model.TravelTime{
		DistanceKM: distanceKM,
		TotalHours: total,
		Hours:      hours,
		Minutes:    minutes,
	}
}
