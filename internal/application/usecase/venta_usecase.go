package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jpcarreon/ventastock/internal/application/dto"
	"github.com/jpcarreon/ventastock/internal/application/inventory"
	"github.com/jpcarreon/ventastock/internal/domain"
	"github.com/jpcarreon/ventastock/internal/domain/entity"
	"github.com/jpcarreon/ventastock/internal/domain/repository"
	"github.com/jpcarreon/ventastock/pkg/logger"
)

// VentaUseCase casos de uso de ventas. Las operaciones que tocan stock son
// sagas manuales: cada descuento apila su reposición y, si un paso posterior
// falla, la pila se ejecuta en orden inverso antes de devolver el error
// original. No hay atomicidad real contra la hoja, solo compensación síncrona
// de mejor esfuerzo.
type VentaUseCase struct {
	repo  repository.VentaRepository
	stock *inventory.StockUseCase
	log   *logger.Logger
}

// NewVentaUseCase construye el caso de uso.
func NewVentaUseCase(repo repository.VentaRepository, stock *inventory.StockUseCase, log *logger.Logger) *VentaUseCase {
	return &VentaUseCase{repo: repo, stock: stock, log: log}
}

// List lista todas las ventas.
func (uc *VentaUseCase) List(ctx context.Context) (*dto.VentasListResponse, error) {
	ventas, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		items = append(items, dto.NewVentaResponse(v))
	}
	return &dto.VentasListResponse{Ventas: items}, nil
}

// GetByID devuelve la venta, o error not found.
func (uc *VentaUseCase) GetByID(ctx context.Context, id string) (*entity.Venta, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.NotFound("Venta no encontrada")
	}
	return v, nil
}

// Create registra una venta descontando el stock de cada línea. Si un
// descuento falla, los ya aplicados se reponen y el stock queda como antes;
// si falla la inserción del registro, también.
func (uc *VentaUseCase) Create(ctx context.Context, in dto.VentaRequest) error {
	fecha := deref(in.Fecha)
	if fecha == "" {
		return domain.Invalid("Fecha es obligatoria")
	}
	lineas := parseLineas(in.Articulos)
	if len(lineas) == 0 {
		return domain.Invalid("Debe incluir al menos un artículo")
	}

	comp := inventory.NewCompensaciones(uc.log)
	if err := uc.descontarLineas(ctx, lineas, comp); err != nil {
		comp.Run(ctx)
		return err
	}

	id, err := uc.repo.NextID(ctx)
	if err != nil {
		comp.Run(ctx)
		return err
	}
	venta := entity.Venta{
		IDVenta: id,
		Fecha:   fecha,
		Cliente: deref(in.Cliente),
		Lineas:  lineas,
		Total:   totalVenta(in.Total, lineas),
	}
	if err := uc.repo.Insert(ctx, venta); err != nil {
		comp.Run(ctx)
		return err
	}
	return nil
}

// Update edita una venta: repone las cantidades viejas (mejor esfuerzo, un
// artículo borrado desde la venta original no bloquea la edición), descuenta
// las nuevas y, si algo falla, deshace lo descontado y vuelve a descontar las
// viejas para dejar el stock como estaba.
func (uc *VentaUseCase) Update(ctx context.Context, id string, in dto.VentaRequest) error {
	actual, err := uc.GetByID(ctx, id)
	if err != nil {
		return err
	}

	for _, l := range actual.Lineas {
		if l.IDArticulo == "" || l.Cantidad <= 0 {
			continue
		}
		if err := uc.stock.Reponer(ctx, l.IDArticulo, l.Cantidad); err != nil {
			uc.log.Warn().Err(err).Str("idarticulo", l.IDArticulo).
				Msg("no se pudo reponer línea vieja, se continúa")
		}
	}

	lineas := parseLineas(in.Articulos)
	comp := inventory.NewCompensaciones(uc.log)
	if err := uc.descontarLineas(ctx, lineas, comp); err != nil {
		comp.Run(ctx)
		for _, l := range actual.Lineas {
			if l.IDArticulo == "" || l.Cantidad <= 0 {
				continue
			}
			if derr := uc.stock.Descontar(ctx, l.IDArticulo, l.Cantidad); derr != nil {
				uc.log.Warn().Err(derr).Str("idarticulo", l.IDArticulo).
					Msg("no se pudo restaurar línea vieja tras fallo de edición")
			}
		}
		return err
	}

	fecha := actual.Fecha
	if in.Fecha != nil {
		fecha = deref(in.Fecha)
	}
	cliente := actual.Cliente
	if in.Cliente != nil {
		cliente = deref(in.Cliente)
	}
	return uc.repo.Update(ctx, id, entity.Venta{
		IDVenta: id,
		Fecha:   fecha,
		Cliente: cliente,
		Lineas:  lineas,
		Total:   totalVenta(in.Total, lineas),
	})
}

// Delete elimina la venta reponiendo el stock de cada línea (mejor esfuerzo).
func (uc *VentaUseCase) Delete(ctx context.Context, id string) error {
	actual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if actual != nil {
		for _, l := range actual.Lineas {
			if l.IDArticulo == "" || l.Cantidad <= 0 {
				continue
			}
			if rerr := uc.stock.Reponer(ctx, l.IDArticulo, l.Cantidad); rerr != nil {
				uc.log.Warn().Err(rerr).Str("idarticulo", l.IDArticulo).
					Msg("no se pudo reponer al eliminar venta, se continúa")
			}
		}
	}
	return uc.repo.Delete(ctx, id)
}

// descontarLineas aplica los descuentos en orden, apilando la reposición de
// cada uno. El primer fallo se devuelve como error de validación con el
// mensaje de stock, sin ejecutar la pila: eso decide el llamador.
func (uc *VentaUseCase) descontarLineas(ctx context.Context, lineas []entity.VentaLinea, comp *inventory.Compensaciones) error {
	for _, l := range lineas {
		if l.IDArticulo == "" || l.Cantidad <= 0 {
			continue
		}
		idArt, cant := l.IDArticulo, l.Cantidad
		if err := uc.stock.Descontar(ctx, idArt, cant); err != nil {
			return domain.Invalid(err.Error())
		}
		comp.Push(fmt.Sprintf("reponer %s x%d", idArt, cant), func(cctx context.Context) error {
			return uc.stock.Reponer(cctx, idArt, cant)
		})
	}
	return nil
}

// parseLineas normaliza las líneas del cuerpo; el precio unitario se deriva
// de total/cantidad.
func parseLineas(arts []dto.VentaLineaRequest) []entity.VentaLinea {
	lineas := make([]entity.VentaLinea, 0, len(arts))
	for _, a := range arts {
		cantidad := derefInt(a.Cantidad)
		total := derefDecimal(a.Total)
		precioU := decimal.Zero
		if cantidad > 0 {
			precioU = total.Div(decimal.NewFromInt(int64(cantidad)))
		}
		lineas = append(lineas, entity.VentaLinea{
			IDArticulo:     deref(a.IDArticulo),
			Nombre:         deref(a.Nombre),
			Cantidad:       cantidad,
			PrecioUnitario: precioU,
			Total:          total,
		})
	}
	return lineas
}

// totalVenta usa el total del cuerpo si vino; si no, suma los de línea.
func totalVenta(total *decimal.Decimal, lineas []entity.VentaLinea) decimal.Decimal {
	if total != nil {
		return *total
	}
	sum := decimal.Zero
	for _, l := range lineas {
		sum = sum.Add(l.Total)
	}
	return sum
}
