package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jpcarreon/ventastock/internal/domain/entity"
)

// ArticuloRepository define el puerto de persistencia para Articulo (DIP).
// Insert no verifica unicidad: el caso de uso debe consultar Exists antes.
type ArticuloRepository interface {
	List(ctx context.Context) ([]entity.Articulo, error)
	GetByID(ctx context.Context, id string) (*entity.Articulo, error)
	GetByCodbarra(ctx context.Context, codbarra string) (*entity.Articulo, error)
	Exists(ctx context.Context, id string) (bool, error)
	// ExistsCodbarra excluirID permite omitir el propio artículo en modo edición.
	ExistsCodbarra(ctx context.Context, codbarra, excluirID string) (bool, error)
	Insert(ctx context.Context, a entity.Articulo) error
	Update(ctx context.Context, idAntiguo string, a entity.Articulo) error
	Delete(ctx context.Context, id string) error
	// UpdateStock sobrescribe solo la celda de stock del artículo.
	UpdateStock(ctx context.Context, id string, stock int) error
	// UpdatePrecioYStock sobrescribe precio y stock en una sola escritura por lotes.
	UpdatePrecioYStock(ctx context.Context, id string, precio decimal.Decimal, stock int) error
}
