// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package quoteuc_test

import (
	"testing"

	"github.com/mova-mz/mova-core/pkg/core/usecase/quoteuc"
	"github.com/stretchr/testify/require"
)

func TestEstimateTravelTime(t *testing.T) {
	for _, tc := range []struct {
		name       string
		distanceKM float64
		hours      int
		minutes    int
		format     string
		long       bool
		veryLong   bool
	}{
		{
			name:       "two hours sharp",
			distanceKM: 100,
			hours:      2, minutes: 0,
			format: "2h 0min",
		},
		{
			name:       "below one hour",
			distanceKM: 25,
			hours:      0, minutes: 30,
			format: "30 minutos",
		},
		{
			name:       "one day and two hours",
			distanceKM: 1300,
			hours:      26, minutes: 0,
			format: "1 dia e 2h",
			long:   true, veryLong: true,
		},
		{
			name:       "plural days",
			distanceKM: 2500,
			hours:      50, minutes: 0,
			format: "2 dias e 2h",
			long:   true, veryLong: true,
		},
		{
			name:       "long but same day",
			distanceKM: 475,
			hours:      9, minutes: 30,
			format: "9h 30min",
			long:   true,
		},
		{
			name:       "exactly 24 hours keeps hour format",
			distanceKM: 1200,
			hours:      24, minutes: 0,
			format: "24h 0min",
			long:   true,
		},
		{
			name:       "zero distance",
			distanceKM: 0,
			hours:      0, minutes: 0,
			format: "0 minutos",
		},
		{
			name:       "minute rounding carries into hours",
			distanceKM: 99.999,
			hours:      2, minutes: 0,
			format: "2h 0min",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tt := quoteuc.EstimateTravelTime(tc.distanceKM)
			require.Equal(t, tc.hours, tt.Hours, "hours")
			require.Equal(t, tc.minutes, tt.Minutes, "minutes")
			require.Equal(t, tc.format, tt.Format(), "format")
			require.Equal(t, tc.long, tt.LongTrip(), "long trip")
			require.Equal(t, tc.veryLong, tt.VeryLongTrip(), "very long")
		})
	}
}
