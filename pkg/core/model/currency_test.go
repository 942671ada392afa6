// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"

	"github.com/mova-mz/mova-core/pkg/core/model"
	"github.com/stretchr/testify/require"
)

func TestFormatMZN(t *testing.T) {
	for expected, value := range map[string]float64{
		"0,00 MZN":             0,
		"5,00 MZN":             5,
		"999,99 MZN":           999.99,
		"1.000,00 MZN":         1000,
		"12.345,67 MZN":        12345.67,
		"25.287,50 MZN":        25287.5,
		"1.234.567,89 MZN":     1234567.89,
		"100.000.000,00 MZN":   1e8,
		"-12.345,67 MZN":       -12345.67,
		"0,30 MZN":             0.1 + 0.2, // cents are rounded
		"10.000,00 MZN":        9999.999,
	} {
		require.Equal(t, expected, model.FormatMZN(value), "%v", value)
	}
}

func TestFormatMZNReproducible(t *testing.T) {
	require.Equal(
		t, model.FormatMZN(29750), model.FormatMZN(29750),
		"identical inputs render identically",
	)
}
