package repository

import (
	"context"

	"github.com/jpcarreon/ventastock/internal/domain/entity"
)

// VentaRepository puerto de persistencia para ventas. Una venta ocupa una fila
// por línea; todas comparten idventa.
type VentaRepository interface {
	List(ctx context.Context) ([]entity.Venta, error)
	GetByID(ctx context.Context, id string) (*entity.Venta, error)
	// NextID genera el siguiente idventa secuencial (max numérico + 1).
	NextID(ctx context.Context) (string, error)
	Insert(ctx context.Context, v entity.Venta) error
	// Update reemplaza todas las filas de la venta por las nuevas líneas.
	Update(ctx context.Context, id string, v entity.Venta) error
	Delete(ctx context.Context, id string) error
}
