// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package postgres adapts a PostgreSQL database, accessed through the
// GORM framework, to the repository ports of the core layer. The
// Pool, Conn, and Tx types realize the repo.Pool, repo.Conn, and
// repo.Tx interfaces respectively, while the nested routesrp and
// cargosrp packages realize the table-specific repositories.
package postgres

import "github.com/mova-mz/mova-core/pkg/core/model"

// These constants represent the major, minor, and patch components of
// the current reference-data schema semantic version (the routes and
// cargo_types tables managed by the `movaweb db init` command).
const (
	Major = 1
	Minor = 0
	Patch = 0
)

// Version is the supported reference-data schema semantic version.
var Version = model.SemVer{Major, Minor, Patch}
