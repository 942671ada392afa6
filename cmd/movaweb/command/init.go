// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mova-mz/mova-core/pkg/adapter/config"
	"github.com/mova-mz/mova-core/pkg/adapter/db/postgres"
	"github.com/mova-mz/mova-core/pkg/adapter/db/postgres/cargosrp"
	"github.com/mova-mz/mova-core/pkg/adapter/db/postgres/routesrp"
	"github.com/mova-mz/mova-core/pkg/core/log"
	"github.com/mova-mz/mova-core/pkg/core/model"
	"github.com/mova-mz/mova-core/pkg/core/repo"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create and seed the route distance and cargo rate tables",
	Long: `Create and seed the route distance and cargo rate tables.
The database connection information are read from the config file.
Tables are created only if absent and seeded rows are upserted, so a
re-run refreshes the reference data in place. The whole action runs in
one transaction; a failing run leaves the database unchanged.`,
	RunE: initDB,
	Args: cobra.NoArgs,
}

// seedRoutes lists the reference road distances between the main
// freight hubs, in kilometers. Each pair is stored once; lookups
// consult both orderings.
var seedRoutes = []model.Route{
	{Origin: "Maputo", Destination: "Matola", DistanceKM: 15},
	{Origin: "Maputo", Destination: "Xai-Xai", DistanceKM: 210},
	{Origin: "Maputo", Destination: "Inhambane", DistanceKM: 490},
	{Origin: "Maputo", Destination: "Chimoio", DistanceKM: 1090},
	{Origin: "Maputo", Destination: "Beira", DistanceKM: 1190},
	{Origin: "Maputo", Destination: "Tete", DistanceKM: 1580},
	{Origin: "Maputo", Destination: "Quelimane", DistanceKM: 1640},
	{Origin: "Maputo", Destination: "Nampula", DistanceKM: 2150},
	{Origin: "Maputo", Destination: "Pemba", DistanceKM: 2600},
	{Origin: "Beira", Destination: "Chimoio", DistanceKM: 200},
	{Origin: "Beira", Destination: "Quelimane", DistanceKM: 480},
	{Origin: "Beira", Destination: "Tete", DistanceKM: 580},
	{Origin: "Beira", Destination: "Nampula", DistanceKM: 1315},
	{Origin: "Quelimane", Destination: "Nampula", DistanceKM: 890},
	{Origin: "Nampula", Destination: "Nacala", DistanceKM: 185},
	{Origin: "Nampula", Destination: "Pemba", DistanceKM: 410},
}

// seedCargoTypes lists the cargo rate table, with rates in MZN per
// kilometer per tonne and positions in presentation order.
var seedCargoTypes = []model.CargoType{
	{ID: "milho", Label: "Milho", Rate: 2.5, Position: 1},
	{ID: "arroz", Label: "Arroz", Rate: 2.8, Position: 2},
	{ID: "feijao", Label: "Feijão", Rate: 3.0, Position: 3},
	{ID: "algodao", Label: "Algodão", Rate: 3.1, Position: 4},
	{ID: "amendoim", Label: "Amendoim", Rate: 3.5, Position: 5},
	{ID: "caju", Label: "Castanha de Caju", Rate: 4.2, Position: 6},
	{ID: "acucar", Label: "Açúcar", Rate: 2.6, Position: 7},
	{ID: "madeira", Label: "Madeira", Rate: 3.8, Position: 8},
}

const createTables = `
CREATE TABLE IF NOT EXISTS routes (
    origin VARCHAR NOT NULL,
    destination VARCHAR NOT NULL,
    distance_km FLOAT8 NOT NULL,
    PRIMARY KEY (origin, destination)
);
CREATE TABLE IF NOT EXISTS cargo_types (
    id VARCHAR PRIMARY KEY,
    label VARCHAR NOT NULL,
    rate FLOAT8 NOT NULL,
    position INTEGER NOT NULL
);`

func initDB(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, err := config.LoadFile(cfgPath)
	if err != nil {
		return fmt.Errorf("loading configs: %w", err)
	}
	p, err := c.Database.ConnectionPool(ctx)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	routesRepo := routesrp.New()
	cargosRepo := cargosrp.New()
	err = p.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			if _, err := tx.Exec(ctx, createTables); err != nil {
				return fmt.Errorf("creating tables: %w", err)
			}
			rq := routesRepo.Tx(tx)
			for _, r := range seedRoutes {
				if err := rq.Save(ctx, r); err != nil {
					return fmt.Errorf(
						"seeding %s-%s route: %w",
						r.Origin, r.Destination, err,
					)
				}
			}
			cq := cargosRepo.Tx(tx)
			for _, ct := range seedCargoTypes {
				if err := cq.Save(ctx, ct); err != nil {
					return fmt.Errorf(
						"seeding %s cargo rate: %w", ct.ID, err,
					)
				}
			}
			return nil
		})
	})
	if err != nil {
		return fmt.Errorf("initializing DB: %w", err)
	}
	log.Info(
		ctx, "reference data initialized",
		log.Valuer("schema", postgres.Version),
		slog.Int("routes", len(seedRoutes)),
		slog.Int("cargo-types", len(seedCargoTypes)),
	)
	return nil
}

func init() {
	dbCmd.AddCommand(initCmd)
}
