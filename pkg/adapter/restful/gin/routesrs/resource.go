// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routesrs realizes the routes resource, exposing the
// persisted distance table through the REST APIs, so the estimation
// forms can populate their location selectors.
package routesrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mova-mz/mova-core/pkg/adapter/restful/gin/serdser"
	"github.com/mova-mz/mova-core/pkg/core/usecase/quoteuc"
)

type resource struct {
	quotes *quoteuc.UseCase
}

// Register instantiates a resource adapting the quotes use case
// instance with the relevant REST APIs including:
//  1. GET request to /api/mova/v1/routes
//     in order to list the known distance-table entries.
func Register(r *gin.RouterGroup, quotes *quoteuc.UseCase) {
	rs := &resource{quotes: quotes}
	r.GET("routes", rs.ListRoutes)
}

func (rs *resource) ListRoutes(c *gin.Context) {
	routes, err := rs.quotes.Routes(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerRoutes(routes))
}
