// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package quoteuc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mova-mz/mova-core/pkg/core/model"
)

// ShareParams carries everything the share-text template embeds. The
// Travel estimate is optional; when nil its line is omitted.
type ShareParams struct {
	Origin       string
	Destination  string
	Cargo        model.CargoType
	WeightTonnes float64
	DistanceKM   float64
	Travel       *model.TravelTime
	PriceMin     float64
	PriceAvg     float64
	PriceMax     float64
}

// ShareText renders the fixed quote-sharing message with '*' emphasis
// markers (as understood by chat applications). The output is
// byte-reproducible for identical inputs, so a copied and a re-shared
// quote compare equal.
func ShareText(p ShareParams) string {
	var b strings.Builder
	b.WriteString("*Cotação de Transporte MOVA*\n\n")
	fmt.Fprintf(&b, "Rota: %s → %s\n", p.Origin, p.Destination)
	fmt.Fprintf(&b, "Carga: %s\n", p.Cargo.Label)
	fmt.Fprintf(&b, "Peso: %s t\n", decimal(p.WeightTonnes))
	fmt.Fprintf(&b, "Distância: %s km\n", decimal(p.DistanceKM))
	if p.Travel != nil {
		fmt.Fprintf(&b, "Tempo estimado: %s\n", p.Travel.Format())
	}
	b.WriteString("\n*Preço estimado:*\n")
	fmt.Fprintf(&b, "Mínimo: %s\n", model.FormatMZN(p.PriceMin))
	fmt.Fprintf(&b, "Médio: %s\n", model.FormatMZN(p.PriceAvg))
	fmt.Fprintf(&b, "Máximo: %s\n", model.FormatMZN(p.PriceMax))
	b.WriteString("\nCotação gerada na plataforma MOVA")
	return b.String()
}

// ShareTextPlain renders the same message with the emphasis markers
// stripped, for channels without text formatting (e.g. email bodies).
func ShareTextPlain(p ShareParams) string {
	return strings.ReplaceAll(ShareText(p), "*", "")
}

// decimal renders a number with the minimal number of decimals which
// round-trips, keeping the share text stable across runs.
func decimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
