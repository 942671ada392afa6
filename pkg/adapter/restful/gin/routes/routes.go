// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of all repo, use case, and resource
// packages based on the user provided configuration settings.
package routes

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/mova-mz/mova-core/pkg/adapter/config"
	"github.com/mova-mz/mova-core/pkg/adapter/db/postgres/cargosrp"
	"github.com/mova-mz/mova-core/pkg/adapter/db/postgres/routesrp"
	"github.com/mova-mz/mova-core/pkg/adapter/restful/gin/notifsrs"
	"github.com/mova-mz/mova-core/pkg/adapter/restful/gin/quotesrs"
	"github.com/mova-mz/mova-core/pkg/adapter/restful/gin/routesrs"
	"github.com/mova-mz/mova-core/pkg/core/event"
	"github.com/mova-mz/mova-core/pkg/core/repo"
	"github.com/mova-mz/mova-core/pkg/core/usecase/notifuc"
	"github.com/mova-mz/mova-core/pkg/core/usecase/quoteuc"
)

// Register instantiates relevant repositories and use cases based on
// the uc configuration settings. The p connections pool is passed to
// the use case instances, so they may acquire/release connections
// on demand. These connections will be passed to the repositories
// later in order to run relevant queries on them and accomplish those
// use cases. Each use case package is named like quoteuc and each
// repository package is named like routesrp.
// Register instantiates a series of "resource" structs, from packages
// which are named like quotesrs, in order to adapt the use cases
// interfaces with the REST APIs. These resources are registered as
// request handlers using the e gin-gonic engine instance.
// The s change-event stream feeds the notifications aggregator, which
// is the single long-lived aggregator instance of the process; it is
// activated right here (unless disabled by the settings) and returned
// so the caller may deactivate it on shutdown.
// Possible errors will be returned after possible wrapping.
func Register(
	ctx context.Context,
	e *gin.Engine,
	p repo.Pool,
	s event.Stream,
	uc config.Usecases,
) (*notifuc.UseCase, error) {
	routesRepo := routesrp.New()
	cargosRepo := cargosrp.New()

	quotes := quoteuc.New(p, routesRepo, cargosRepo)
	notifs, err := uc.Notifications.NewUseCase(s)
	if err != nil {
		return nil, fmt.Errorf("creating notifications use case: %w", err)
	}
	enabled := uc.Notifications.Enabled == nil ||
		*uc.Notifications.Enabled
	if enabled {
		if err := notifs.Activate(ctx); err != nil {
			return nil, fmt.Errorf(
				"activating notifications aggregator: %w", err,
			)
		}
	}
	r := e.Group("/api/mova/v1")
	quotesrs.Register(r, quotes)
	routesrs.Register(r, quotes)
	notifsrs.Register(r, notifs)
	return notifs, nil
}
