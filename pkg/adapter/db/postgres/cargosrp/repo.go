package cargosrp

import (
	"context"

	"github.com/mova-mz/mova-core/pkg/adapter/db/postgres"
	"github.com/mova-mz/mova-core/pkg/core/model"
	"github.com/mova-mz/mova-core/pkg/core/repo"
)

type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

func (cargos *Repo) Conn(c repo.Conn) repo.CargosConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) List(ctx context.Context) ([]model.CargoType, error) {
	return List(ctx, cq.Conn)
}

type txQueryer struct {
	*postgres.Tx
}

func (cargos *Repo) Tx(tx repo.Tx) repo.CargosTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) List(ctx context.Context) ([]model.CargoType, error) {
	return List(ctx, tq.Tx)
}

func (tq txQueryer) Save(ctx context.Context, c model.CargoType) error {
	return Save(ctx, tq.Tx, c)
}
