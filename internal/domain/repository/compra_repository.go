package repository

import (
	"context"

	"github.com/jpcarreon/ventastock/internal/domain/entity"
)

// CompraRepository puerto de persistencia para compras.
type CompraRepository interface {
	List(ctx context.Context) ([]entity.Compra, error)
	GetByID(ctx context.Context, id string) (*entity.Compra, error)
	NextID(ctx context.Context) (string, error)
	Insert(ctx context.Context, c entity.Compra) error
	// Update fusiona los campos no vacíos de c sobre la compra actual.
	Update(ctx context.Context, id string, c entity.Compra) error
	Delete(ctx context.Context, id string) error
}
