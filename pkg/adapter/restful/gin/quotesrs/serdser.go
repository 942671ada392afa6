package quotesrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/mova-mz/mova-core/pkg/adapter/restful/gin/serdser"
	"github.com/mova-mz/mova-core/pkg/core/model"
	"github.com/mova-mz/mova-core/pkg/core/usecase/quoteuc"
)

type rawQuoteReq struct {
	Origin      string `form:"origin" binding:"omitempty,max=120"`
	Destination string `form:"destination" binding:"omitempty,max=120"`
	Weight      string `form:"weight" binding:"omitempty,max=32"`
}

type rawChartReq struct {
	rawQuoteReq
	Cargo string `form:"cargo" binding:"omitempty,max=64"`
}

type rawShareReq struct {
	Origin      string `form:"origin" binding:"required,max=120"`
	Destination string `form:"destination" binding:"required,max=120"`
	Weight      string `form:"weight" binding:"required,max=32"`
	Cargo       string `form:"cargo" binding:"required,max=64"`
	Plain       bool   `form:"plain" binding:"omitempty"`
}

func (rs *resource) DserQuoteReq(c *gin.Context) *rawQuoteReq {
	req := &rawQuoteReq{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return nil
	}
	return req
}

func (rs *resource) DserChartReq(c *gin.Context) *rawChartReq {
	req := &rawChartReq{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return nil
	}
	return req
}

func (rs *resource) DserShareReq(c *gin.Context) *rawShareReq {
	req := &rawShareReq{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return nil
	}
	var errs map[string][]string
	_, ok := quoteuc.ParseWeight(req.Weight)
	serdser.Assert(
		&errs, ok, "weight",
		"Weight must be a positive decimal number of tonnes.",
	)
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return req
}

type quoteResp struct {
	model.Quote
	PriceMinText string `json:"price_min_text"`
	PriceAvgText string `json:"price_avg_text"`
	PriceMaxText string `json:"price_max_text"`
}

type travelResp struct {
	TotalHours   float64 `json:"total_hours"`
	Text         string  `json:"text"`
	LongTrip     bool    `json:"long_trip"`
	VeryLongTrip bool    `json:"very_long_trip"`
}

type comparisonResp struct {
	Quotes        []quoteResp `json:"quotes"`
	Cheapest      *quoteResp  `json:"cheapest,omitempty"`
	MostExpensive *quoteResp  `json:"most_expensive,omitempty"`
	Gap           float64     `json:"gap"`
	GapText       string      `json:"gap_text,omitempty"`
	Travel        *travelResp `json:"travel,omitempty"`
}

// SerComparison converts a quotes comparison into its response form,
// augmenting each raw price with its pre-formatted MZN rendering and
// attaching the travel-time estimate of the route (the distance is
// identical across quotes, so the first one is representative).
func SerComparison(cmp model.Comparison) comparisonResp {
	resp := comparisonResp{
		Quotes: make([]quoteResp, 0, len(cmp.Quotes)),
		Gap:    cmp.Gap(),
	}
	for _, q := range cmp.Quotes {
		resp.Quotes = append(resp.Quotes, serQuote(q))
	}
	if q, ok := cmp.Cheapest(); ok {
		sq := serQuote(q)
		resp.Cheapest = &sq
	}
	if q, ok := cmp.MostExpensive(); ok {
		sq := serQuote(q)
		resp.MostExpensive = &sq
	}
	if !cmp.Empty() {
		resp.GapText = model.FormatMZN(cmp.Gap())
		t := quoteuc.EstimateTravelTime(cmp.Quotes[0].DistanceKM)
		resp.Travel = &travelResp{
			TotalHours:   t.TotalHours,
			Text:         t.Format(),
			LongTrip:     t.LongTrip(),
			VeryLongTrip: t.VeryLongTrip(),
		}
	}
	return resp
}

func serQuote(q model.Quote) quoteResp {
	return quoteResp{
		Quote:        q,
		PriceMinText: model.FormatMZN(q.PriceMin),
		PriceAvgText: model.FormatMZN(q.PriceAvg),
		PriceMaxText: model.FormatMZN(q.PriceMax),
	}
}

type chartBarResp struct {
	model.ChartBar
	PriceText string `json:"price_text"`
}

type chartResp struct {
	Bars []chartBarResp `json:"bars"`
}

func SerChart(bars []model.ChartBar) chartResp {
	resp := chartResp{Bars: make([]chartBarResp, 0, len(bars))}
	for _, b := range bars {
		resp.Bars = append(resp.Bars, chartBarResp{
			ChartBar:  b,
			PriceText: model.FormatMZN(b.Price),
		})
	}
	return resp
}
