package routesrp

import (
	"context"
	"fmt"

	"github.com/mova-mz/mova-core/pkg/adapter/db/postgres"
	"github.com/mova-mz/mova-core/pkg/core/cerr"
	"github.com/mova-mz/mova-core/pkg/core/model"
	"gorm.io/gorm/clause"
)

type gRoute struct {
	Origin      string  `gorm:"primaryKey;column:origin"`
	Destination string  `gorm:"primaryKey;column:destination"`
	DistanceKM  float64 `gorm:"column:distance_km"`
}

func (gr *gRoute) TableName() string {
	return "routes"
}

func (gr *gRoute) Model() model.Route {
	return model.Route{
		Origin:      gr.Origin,
		Destination: gr.Destination,
		DistanceKM:  gr.DistanceKM,
	}
}

// LookupDistance resolves the road distance between two locations,
// consulting both orderings of the pair since the table stores each
// route once. An absent pair yields a not-found error.
func LookupDistance[Q postgres.Queryer](ctx context.Context, q Q, origin, destination string) (float64, error) {
	gdb := q.GORM(ctx)
	var gr []gRoute
	gdb.Where(
		"(origin=? AND destination=?) OR (origin=? AND destination=?)",
		origin, destination, destination, origin,
	).Limit(1).Find(&gr)
	if err := gdb.Error; err != nil {
		return 0, fmt.Errorf("query: %w", err)
	}
	if n := len(gr); n != 1 {
		return 0, cerr.NotFound(
			fmt.Errorf("no distance entry for %q and %q", origin, destination),
		)
	}
	return gr[0].DistanceKM, nil
}

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Route, error) {
	gdb := q.GORM(ctx)
	var gr []gRoute
	gdb.Order("origin, destination").Find(&gr)
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	routes := make([]model.Route, 0, len(gr))
	for i := range gr {
		routes = append(routes, gr[i].Model())
	}
	return routes, nil
}

func Save[Q postgres.Queryer](ctx context.Context, q Q, r model.Route) error {
	gdb := q.GORM(ctx)
	gdb.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "origin"}, {Name: "destination"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"distance_km"}),
	}).Create(&gRoute{
		Origin:      r.Origin,
		Destination: r.Destination,
		DistanceKM:  r.DistanceKM,
	})
	if err := gdb.Error; err != nil {
		return fmt.Errorf("upsert: %w", err)
	}
	return nil
}
