package facturacion

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("registro no encontrado")

type FacturaRepository interface {
	List(ctx context.Context) ([]*Factura, error)
	GetByID(ctx context.Context, id int64) (*Factura, error)
	Create(ctx context.Context, f *Factura) error
	Update(ctx context.Context, f *Factura) error
	Delete(ctx context.Context, id int64) error
}

type PagoRepository interface {
	List(ctx context.Context) ([]*Pago, error)
	GetByID(ctx context.Context, id int64) (*Pago, error)
	Create(ctx context.Context, p *Pago) error
	Update(ctx context.Context, p *Pago) error
	Delete(ctx context.Context, id int64) error
}
