// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package quoteuc_test

import (
	"strings"
	"testing"

	"github.com/mova-mz/mova-core/pkg/core/model"
	"github.com/mova-mz/mova-core/pkg/core/usecase/quoteuc"
	"github.com/stretchr/testify/require"
)

func shareParams() quoteuc.ShareParams {
	travel := quoteuc.EstimateTravelTime(1190)
	return quoteuc.ShareParams{
		Origin:       "Maputo",
		Destination:  "Beira",
		Cargo:        model.CargoType{ID: "milho", Label: "Milho", Rate: 2.5},
		WeightTonnes: 10,
		DistanceKM:   1190,
		Travel:       &travel,
		PriceMin:     25287.5,
		PriceAvg:     29750,
		PriceMax:     34212.5,
	}
}

func TestShareText(t *testing.T) {
	expected := strings.Join([]string{
		"*Cotação de Transporte MOVA*",
		"",
		"Rota: Maputo → Beira",
		"Carga: Milho",
		"Peso: 10 t",
		"Distância: 1190 km",
		"Tempo estimado: 23h 48min",
		"",
		"*Preço estimado:*",
		"Mínimo: 25.287,50 MZN",
		"Médio: 29.750,00 MZN",
		"Máximo: 34.212,50 MZN",
		"",
		"Cotação gerada na plataforma MOVA",
	}, "\n")
	require.Equal(t, expected, quoteuc.ShareText(shareParams()))

	// byte-reproducible for clipboard copy equality
	require.Equal(
		t, quoteuc.ShareText(shareParams()),
		quoteuc.ShareText(shareParams()),
	)
}

func TestShareTextWithoutTravel(t *testing.T) {
	p := shareParams()
	p.Travel = nil
	text := quoteuc.ShareText(p)
	require.NotContains(t, text, "Tempo estimado")
	require.Contains(t, text, "Distância: 1190 km\n\n*Preço estimado:*")
}

func TestShareTextPlain(t *testing.T) {
	plain := quoteuc.ShareTextPlain(shareParams())
	require.NotContains(t, plain, "*")
	require.True(
		t, strings.HasPrefix(plain, "Cotação de Transporte MOVA"),
		"emphasis markers must be stripped, text preserved",
	)
	require.Contains(t, plain, "Preço estimado:")
}
