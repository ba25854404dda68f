package repository

import (
	"context"

	"github.com/jpcarreon/ventastock/internal/domain/entity"
)

// ProveedorRepository puerto de persistencia para proveedores.
type ProveedorRepository interface {
	List(ctx context.Context) ([]entity.Proveedor, error)
	Exists(ctx context.Context, id string) (bool, error)
	Insert(ctx context.Context, p entity.Proveedor) error
	Update(ctx context.Context, idAntiguo string, p entity.Proveedor) error
	Delete(ctx context.Context, id string) error
}
