// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package quotesrs realizes the quotes resource, allowing the price
// estimation REST APIs to be accepted and delegated to the quotes
// use case respectively.
package quotesrs

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mova-mz/mova-core/pkg/adapter/restful/gin/serdser"
	"github.com/mova-mz/mova-core/pkg/core/cerr"
	"github.com/mova-mz/mova-core/pkg/core/model"
	"github.com/mova-mz/mova-core/pkg/core/usecase/quoteuc"
)

type resource struct {
	quotes *quoteuc.UseCase
}

// Register instantiates a resource adapting the quotes use case
// instance with the relevant REST APIs including:
//  1. GET request to /api/mova/v1/quotes
//     in order to compare price estimates over all cargo types,
//  2. GET request to /api/mova/v1/quotes/chart
//     in order to obtain the per-cargo price chart bars,
//  3. GET request to /api/mova/v1/quotes/share
//     in order to render one cargo type's quote as a shareable text.
func Register(r *gin.RouterGroup, quotes *quoteuc.UseCase) {
	rs := &resource{quotes: quotes}
	r.GET("quotes", rs.CompareQuotes)
	r.GET("quotes/chart", rs.ChartQuotes)
	r.GET("quotes/share", rs.ShareQuote)
}

func (rs *resource) CompareQuotes(c *gin.Context) {
	req := rs.DserQuoteReq(c)
	if req == nil {
		return
	}
	cmp, err := rs.quotes.Compare(
		c, req.Origin, req.Destination, req.Weight,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerComparison(cmp))
}

func (rs *resource) ChartQuotes(c *gin.Context) {
	req := rs.DserChartReq(c)
	if req == nil {
		return
	}
	bars, err := rs.quotes.Chart(
		c, req.Origin, req.Destination, req.Weight, req.Cargo,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerChart(bars))
}

func (rs *resource) ShareQuote(c *gin.Context) {
	req := rs.DserShareReq(c)
	if req == nil {
		return
	}
	cmp, err := rs.quotes.Compare(
		c, req.Origin, req.Destination, req.Weight,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	var quote *model.Quote
	for i := range cmp.Quotes {
		if cmp.Quotes[i].Cargo.ID == req.Cargo {
			quote = &cmp.Quotes[i]
			break
		}
	}
	if quote == nil {
		serdser.SerErr(c, cerr.NotFound(
			fmt.Errorf("unknown cargo type: %q", req.Cargo),
		))
		return
	}
	travel := quoteuc.EstimateTravelTime(quote.DistanceKM)
	params := quoteuc.ShareParams{
		Origin:       req.Origin,
		Destination:  req.Destination,
		Cargo:        quote.Cargo,
		WeightTonnes: quote.WeightTonnes,
		DistanceKM:   quote.DistanceKM,
		Travel:       &travel,
		PriceMin:     quote.PriceMin,
		PriceAvg:     quote.PriceAvg,
		PriceMax:     quote.PriceMax,
	}
	text := quoteuc.ShareText(params)
	if req.Plain {
		text = quoteuc.ShareTextPlain(params)
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}
