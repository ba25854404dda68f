package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jpcarreon/ventastock/internal/domain"
	"github.com/jpcarreon/ventastock/internal/domain/repository"
	"github.com/jpcarreon/ventastock/pkg/logger"
)

// StockUseCase primitivas de ajuste de inventario usadas por ventas y compras.
// Cada primitiva relee el artículo justo antes de mutar, para calcular sobre
// el stock vigente y no sobre una lectura vieja.
type StockUseCase struct {
	articulos repository.ArticuloRepository
	log       *logger.Logger
}

// NewStockUseCase construye las primitivas de stock.
func NewStockUseCase(articulos repository.ArticuloRepository, log *logger.Logger) *StockUseCase {
	return &StockUseCase{articulos: articulos, log: log}
}

// Descontar resta cantidad al stock de un artículo. Falla con
// StockInsuficienteError si no alcanza; nunca deja stock negativo.
// Id vacío o cantidad no positiva son no-op.
func (s *StockUseCase) Descontar(ctx context.Context, idArticulo string, cantidad int) error {
	if strings.TrimSpace(idArticulo) == "" || cantidad <= 0 {
		return nil
	}
	a, err := s.articulos.GetByID(ctx, idArticulo)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.NotFound(fmt.Sprintf("Artículo %s no encontrado", idArticulo))
	}
	if a.Stock < cantidad {
		return &domain.StockInsuficienteError{IDArticulo: idArticulo, Disponible: a.Stock, Solicitado: cantidad}
	}
	return s.articulos.UpdateStock(ctx, a.IDArticulo, a.Stock-cantidad)
}

// Reponer suma cantidad al stock. Si el artículo ya no existe no hace nada:
// reponer es siempre compensación de mejor esfuerzo y no debe fallar por un
// artículo borrado entre medias.
func (s *StockUseCase) Reponer(ctx context.Context, idArticulo string, cantidad int) error {
	if strings.TrimSpace(idArticulo) == "" || cantidad <= 0 {
		return nil
	}
	a, err := s.articulos.GetByID(ctx, idArticulo)
	if err != nil {
		return err
	}
	if a == nil {
		s.log.Warn().
			Str("idarticulo", idArticulo).
			Int("cantidad", cantidad).
			Msg("reponer sobre artículo inexistente, se ignora")
		return nil
	}
	return s.articulos.UpdateStock(ctx, a.IDArticulo, a.Stock+cantidad)
}

// Restar quita cantidad del stock sin permitir negativos: si no alcanza,
// falla en lugar de recortar. Se usa al revertir compras.
func (s *StockUseCase) Restar(ctx context.Context, idArticulo string, cantidad int) error {
	if strings.TrimSpace(idArticulo) == "" || cantidad <= 0 {
		return nil
	}
	a, err := s.articulos.GetByID(ctx, idArticulo)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.NotFound(fmt.Sprintf("Artículo %s no encontrado", idArticulo))
	}
	if a.Stock < cantidad {
		return &domain.StockInsuficienteError{IDArticulo: idArticulo, Disponible: a.Stock, Solicitado: cantidad}
	}
	return s.articulos.UpdateStock(ctx, a.IDArticulo, a.Stock-cantidad)
}

// ActualizarPrecioYStock fija el precio y suma cantidad al stock en una sola
// escritura por lotes. Lo usa el alta de compras: la compra trae el precio
// nuevo del artículo además de la mercadería.
func (s *StockUseCase) ActualizarPrecioYStock(ctx context.Context, idArticulo string, precio decimal.Decimal, cantidad int) error {
	if strings.TrimSpace(idArticulo) == "" || cantidad <= 0 {
		return nil
	}
	a, err := s.articulos.GetByID(ctx, idArticulo)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.NotFound(fmt.Sprintf("Artículo %s no encontrado", idArticulo))
	}
	return s.articulos.UpdatePrecioYStock(ctx, a.IDArticulo, precio, a.Stock+cantidad)
}
