// Package repo declares the repository ports which the use cases
// layer relies on, keeping it independent of the database framework
// realizations in the adapter layer.
package repo

import "context"

type ConnHandler func(context.Context, Conn) error

type Pool interface {
	Conn(ctx context.Context, handler ConnHandler) error
	Close() error
}
