package routesrp

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

func (routes *Repo) Conn(c repo.Conn) repo.RoutesConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) LookupDistance(ctx context.Context, origin, destination string) (float64, error) {
	return LookupDistance(ctx, cq.Conn, origin, destination)
}

func (cq connQueryer) List(ctx context.Context) ([]model.Route, error) {
	return List(ctx, cq.Conn)
}

type txQueryer struct {
	*postgres.Tx
}

func (routes *Repo) Tx(tx repo.Tx) repo.RoutesTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) LookupDistance(ctx context.Context, origin, destination string) (float64, error) {
	return LookupDistance(ctx, tq.Tx, origin, destination)
}

func (tq txQueryer) List(ctx context.Context) ([]model.Route, error) {
	return List(ctx, tq.Tx)
}

func (tq txQueryer) Save(ctx context.Context, r model.Route) error {
	return Save(ctx, tq.Tx, r)
}
