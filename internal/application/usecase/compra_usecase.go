package usecase

import (
	"context"
	"time"

	"github.com/jpcarreon/ventastock/internal/application/dto"
	"github.com/jpcarreon/ventastock/internal/application/inventory"
	"github.com/jpcarreon/ventastock/internal/domain"
	"github.com/jpcarreon/ventastock/internal/domain/entity"
	"github.com/jpcarreon/ventastock/internal/domain/repository"
	"github.com/jpcarreon/ventastock/pkg/logger"
)

// CompraUseCase casos de uso de compras. Una compra suma su cantidad al stock
// del artículo y sobrescribe el precio con el de la compra (el último precio
// gana). Las compensaciones siguen el mismo esquema de mejor esfuerzo que las
// ventas, en sentido inverso.
type CompraUseCase struct {
	repo  repository.CompraRepository
	stock *inventory.StockUseCase
	log   *logger.Logger
}

// NewCompraUseCase construye el caso de uso.
func NewCompraUseCase(repo repository.CompraRepository, stock *inventory.StockUseCase, log *logger.Logger) *CompraUseCase {
	return &CompraUseCase{repo: repo, stock: stock, log: log}
}

// List lista todas las compras.
func (uc *CompraUseCase) List(ctx context.Context) (*dto.ComprasListResponse, error) {
	compras, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompraResponse, 0, len(compras))
	for _, c := range compras {
		items = append(items, dto.NewCompraResponse(c))
	}
	return &dto.ComprasListResponse{Compras: items}, nil
}

// Create registra una compra aplicando primero precio y stock al artículo.
// Si la inserción del registro falla después, el stock agregado se resta
// (mejor esfuerzo); el precio queda con el valor nuevo.
func (uc *CompraUseCase) Create(ctx context.Context, in dto.CompraRequest) error {
	fecha := deref(in.Fecha)
	if fecha == "" {
		fecha = time.Now().Format("2006-01-02")
	}
	proveedor := deref(in.Proveedor)
	articulo := deref(in.Articulo)
	if proveedor == "" || articulo == "" {
		return domain.Invalid("Proveedor y artículo son obligatorios")
	}
	idArt := deref(in.IDArticulo)
	cant := derefInt(in.Cantidad)
	prec := derefDecimal(in.Precio)
	if idArt == "" || cant <= 0 || prec.IsNegative() {
		return domain.Invalid("ID artículo, cantidad (positiva) y precio son obligatorios")
	}

	if err := uc.stock.ActualizarPrecioYStock(ctx, idArt, prec, cant); err != nil {
		return domain.Invalid(err.Error())
	}

	id, err := uc.repo.NextID(ctx)
	if err != nil {
		uc.restarMejorEsfuerzo(ctx, idArt, cant)
		return err
	}
	compra := entity.Compra{
		IDCompra:   id,
		Fecha:      fecha,
		Proveedor:  proveedor,
		IDArticulo: idArt,
		Articulo:   articulo,
		Cantidad:   cant,
		Precio:     prec,
	}
	if err := uc.repo.Insert(ctx, compra); err != nil {
		uc.restarMejorEsfuerzo(ctx, idArt, cant)
		return err
	}
	return nil
}

// Update edita una compra: resta el efecto viejo del stock (mejor esfuerzo),
// aplica el nuevo precio y cantidad y, si eso falla, reaplica los valores
// viejos antes de devolver el error. Los campos ausentes del cuerpo conservan
// el valor vigente.
func (uc *CompraUseCase) Update(ctx context.Context, id string, in dto.CompraRequest) error {
	actual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if actual == nil {
		return domain.NotFound("Compra no encontrada")
	}

	idArtNuevo := actual.IDArticulo
	if in.IDArticulo != nil {
		idArtNuevo = deref(in.IDArticulo)
	}
	cantNueva := actual.Cantidad
	if in.Cantidad != nil {
		cantNueva = *in.Cantidad
	}
	precNuevo := actual.Precio
	if in.Precio != nil {
		precNuevo = *in.Precio
	}
	idArtViejo := actual.IDArticulo
	cantVieja := actual.Cantidad
	precViejo := actual.Precio

	if idArtViejo != "" && cantVieja > 0 {
		uc.restarMejorEsfuerzo(ctx, idArtViejo, cantVieja)
	}

	if idArtNuevo != "" && cantNueva > 0 {
		if err := uc.stock.ActualizarPrecioYStock(ctx, idArtNuevo, precNuevo, cantNueva); err != nil {
			if idArtViejo != "" && cantVieja > 0 {
				if rerr := uc.stock.ActualizarPrecioYStock(ctx, idArtViejo, precViejo, cantVieja); rerr != nil {
					uc.log.Warn().Err(rerr).Str("idarticulo", idArtViejo).
						Msg("no se pudo restaurar precio y stock tras fallo de edición")
				}
			}
			return domain.Invalid(err.Error())
		}
	}

	nueva := *actual
	nueva.IDCompra = id
	if in.Fecha != nil {
		nueva.Fecha = deref(in.Fecha)
	}
	if in.Proveedor != nil {
		nueva.Proveedor = deref(in.Proveedor)
	}
	if in.Articulo != nil {
		nueva.Articulo = deref(in.Articulo)
	}
	nueva.IDArticulo = idArtNuevo
	nueva.Cantidad = cantNueva
	nueva.Precio = precNuevo
	return uc.repo.Update(ctx, id, nueva)
}

// Delete elimina la compra restando su cantidad del stock (mejor esfuerzo).
// El precio del artículo no se toca: revertir precios requeriría historial.
func (uc *CompraUseCase) Delete(ctx context.Context, id string) error {
	actual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if actual != nil && actual.IDArticulo != "" && actual.Cantidad > 0 {
		uc.restarMejorEsfuerzo(ctx, actual.IDArticulo, actual.Cantidad)
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *CompraUseCase) restarMejorEsfuerzo(ctx context.Context, idArt string, cant int) {
	if err := uc.stock.Restar(ctx, idArt, cant); err != nil {
		uc.log.Warn().Err(err).Str("idarticulo", idArt).Int("cantidad", cant).
			Msg("no se pudo restar stock, se continúa")
	}
}
