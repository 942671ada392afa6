// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"math"
	"strconv"
	"strings"
)

// FormatMZN renders an amount of Mozambican meticais following the
// pt-MZ convention: '.' as the thousands separator, ',' as the
// decimal separator, always two decimal places, and a trailing
// currency code, e.g. 12.345,67 MZN.
// The output is deterministic for a given input, so copies of a quote
// shared through different channels compare byte-for-byte equal.
func FormatMZN(v float64) string {
	var b strings.Builder
	if math.Signbit(v) {
		b.WriteByte('-')
	}
	cents := int64(math.Round(math.Abs(v) * 100))
	whole := strconv.FormatInt(cents/100, 10)
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	b.WriteByte(',')
	frac := cents % 100
	b.WriteByte(byte('0' + frac/10))
	b.WriteByte(byte('0' + frac%10))
	b.WriteString(" MZN")
	return b.String()
}
