package cargosrp

import (
	"context"
	"fmt"

	"github.com/mova-mz/mova-core/pkg/adapter/db/postgres"
	"github.com/mova-mz/mova-core/pkg/core/model"
	"gorm.io/gorm/clause"
)

type gCargoType struct {
	ID       string  `gorm:"primaryKey;column:id"`
	Label    string  `gorm:"column:label"`
	Rate     float64 `gorm:"column:rate"`
	Position int     `gorm:"column:position"`
}

func (gc *gCargoType) TableName() string {
	return "cargo_types"
}

func (gc *gCargoType) Model() model.CargoType {
	return model.CargoType{
		ID:       gc.ID,
		Label:    gc.Label,
		Rate:     gc.Rate,
		Position: gc.Position,
	}
}

// List returns the cargo-rate table in its fixed presentation order.
func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.CargoType, error) {
	gdb := q.GORM(ctx)
	var gc []gCargoType
	gdb.Order("position").Find(&gc)
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	cargos := make([]model.CargoType, 0, len(gc))
	for i := range gc {
		cargos = append(cargos, gc[i].Model())
	}
	return cargos, nil
}

func Save[Q postgres.Queryer](ctx context.Context, q Q, c model.CargoType) error {
	gdb := q.GORM(ctx)
	gdb.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(
			[]string{"label", "rate", "position"},
		),
	}).Create(&gCargoType{
		ID:       c.ID,
		Label:    c.Label,
		Rate:     c.Rate,
		Position: c.Position,
	})
	if err := gdb.Error; err != nil {
		return fmt.Errorf("upsert: %w", err)
	}
	return nil
}
