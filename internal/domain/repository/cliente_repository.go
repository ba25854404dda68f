package repository

import (
	"context"

	"github.com/jpcarreon/ventastock/internal/domain/entity"
)

// ClienteRepository puerto de persistencia para clientes.
type ClienteRepository interface {
	List(ctx context.Context) ([]entity.Cliente, error)
	Exists(ctx context.Context, id string) (bool, error)
	NextID(ctx context.Context) (string, error)
	Insert(ctx context.Context, c entity.Cliente) error
	Update(ctx context.Context, idAntiguo string, c entity.Cliente) error
	Delete(ctx context.Context, id string) error
}
