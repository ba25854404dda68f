package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jpcarreon/ventastock/internal/application/dto"
	"github.com/jpcarreon/ventastock/internal/domain"
	"github.com/jpcarreon/ventastock/internal/domain/entity"
	"github.com/jpcarreon/ventastock/internal/domain/repository"
)

// ArticuloUseCase casos de uso CRUD y de búsqueda para artículos. La unicidad
// de id y código de barras se verifica con un escaneo completo antes de cada
// escritura; no hay índice.
type ArticuloUseCase struct {
	repo repository.ArticuloRepository
}

// NewArticuloUseCase construye el caso de uso.
func NewArticuloUseCase(repo repository.ArticuloRepository) *ArticuloUseCase {
	return &ArticuloUseCase{repo: repo}
}

// List lista todos los artículos.
func (uc *ArticuloUseCase) List(ctx context.Context) (*dto.ArticulosListResponse, error) {
	articulos, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArticuloResponse, 0, len(articulos))
	for _, a := range articulos {
		items = append(items, dto.NewArticuloResponse(a))
	}
	return &dto.ArticulosListResponse{Articulos: items}, nil
}

// Create da de alta un artículo. Rechaza código de barras ya usado por otro.
func (uc *ArticuloUseCase) Create(ctx context.Context, in dto.ArticuloRequest) (*dto.ArticuloCreadoResponse, error) {
	id := strings.TrimSpace(in.ResolverID())
	nombre := deref(in.Nombre)
	if id == "" || nombre == "" {
		return nil, domain.Invalid("ID artículo y nombre son obligatorios")
	}

	codbarra := deref(in.Codbarra)
	if codbarra != "" {
		existe, err := uc.repo.ExistsCodbarra(ctx, codbarra, "")
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, domain.Duplicated("Ya existe un artículo con ese código de barras")
		}
	}

	a := entity.Articulo{
		Codbarra:    codbarra,
		IDArticulo:  id,
		Nombre:      nombre,
		Descripcion: deref(in.Descripcion),
		Precio:      derefDecimal(in.Precio),
		Stock:       derefInt(in.Stock),
	}
	if err := uc.repo.Insert(ctx, a); err != nil {
		return nil, err
	}
	return &dto.ArticuloCreadoResponse{Success: true, Articulo: dto.NewArticuloResponse(a)}, nil
}

// Exists indica si el artículo existe. Los chequeos de existencia nunca
// propagan errores: degradan a false.
func (uc *ArticuloUseCase) Exists(ctx context.Context, id string) bool {
	existe, err := uc.repo.Exists(ctx, id)
	if err != nil {
		return false
	}
	return existe
}

// ExistsCodbarra indica si otro artículo usa ese código de barras; degrada a
// false ante cualquier error.
func (uc *ArticuloUseCase) ExistsCodbarra(ctx context.Context, codbarra, excluirID string) bool {
	existe, err := uc.repo.ExistsCodbarra(ctx, codbarra, excluirID)
	if err != nil {
		return false
	}
	return existe
}

// Update actualiza un artículo. Permite cambiar el id previa verificación de
// duplicado; el código de barras se verifica excluyendo el propio artículo.
func (uc *ArticuloUseCase) Update(ctx context.Context, id string, in dto.ArticuloRequest) error {
	nombre := deref(in.Nombre)
	if nombre == "" {
		return domain.Invalid("Nombre es obligatorio")
	}

	nuevoID := strings.TrimSpace(in.ResolverID())
	if nuevoID == "" {
		nuevoID = id
	}
	if !strings.EqualFold(nuevoID, id) {
		existe, err := uc.repo.Exists(ctx, nuevoID)
		if err != nil {
			return err
		}
		if existe {
			return domain.Duplicated("Ya existe un artículo con ese código")
		}
	}

	codbarra := deref(in.Codbarra)
	if codbarra != "" {
		existe, err := uc.repo.ExistsCodbarra(ctx, codbarra, id)
		if err != nil {
			return err
		}
		if existe {
			return domain.Duplicated("Ya existe un artículo con ese código de barras")
		}
	}

	return uc.repo.Update(ctx, id, entity.Articulo{
		Codbarra:    codbarra,
		IDArticulo:  nuevoID,
		Nombre:      nombre,
		Descripcion: deref(in.Descripcion),
		Precio:      derefDecimal(in.Precio),
		Stock:       derefInt(in.Stock),
	})
}

// Delete elimina el artículo por id.
func (uc *ArticuloUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Buscar localiza un artículo por código de barras o id; el código de barras
// gana si ambos vienen. Devuelve nil (no error) cuando no hay coincidencia.
func (uc *ArticuloUseCase) Buscar(ctx context.Context, codbarra, id string) (*dto.BusquedaResponse, error) {
	codbarra = strings.TrimSpace(codbarra)
	id = strings.TrimSpace(id)
	if codbarra == "" && id == "" {
		return nil, domain.Invalid("Debe proporcionar codbarra o id")
	}

	articulos, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range articulos {
		a := &articulos[i]
		match := (codbarra != "" && strings.EqualFold(strings.TrimSpace(a.Codbarra), codbarra)) ||
			(id != "" && strings.EqualFold(strings.TrimSpace(a.IDArticulo), id))
		if !match {
			continue
		}
		return &dto.BusquedaResponse{Articulo: &dto.ArticuloBusqueda{
			ID:         a.IDArticulo,
			IDArticulo: a.IDArticulo,
			Codbarra:   a.Codbarra,
			Nombre:     a.Nombre,
			Precio:     a.Precio,
			Stock:      a.Stock,
		}}, nil
	}
	return &dto.BusquedaResponse{Articulo: nil}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

func derefDecimal(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
