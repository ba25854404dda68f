package usecase

import (
	"context"
	"strings"

	"github.com/jpcarreon/ventastock/internal/application/dto"
	"github.com/jpcarreon/ventastock/internal/domain"
	"github.com/jpcarreon/ventastock/internal/domain/entity"
	"github.com/jpcarreon/ventastock/internal/domain/repository"
)

// ProveedorUseCase casos de uso CRUD para proveedores. El id lo aporta el
// usuario y puede cambiarse al editar, previa verificación de duplicado.
type ProveedorUseCase struct {
	repo repository.ProveedorRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo}
}

// List lista todos los proveedores.
func (uc *ProveedorUseCase) List(ctx context.Context) (*dto.ProveedoresListResponse, error) {
	proveedores, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProveedorResponse, 0, len(proveedores))
	for _, p := range proveedores {
		items = append(items, dto.NewProveedorResponse(p))
	}
	return &dto.ProveedoresListResponse{Proveedores: items}, nil
}

// Exists indica si el proveedor existe; degrada a false ante cualquier error.
func (uc *ProveedorUseCase) Exists(ctx context.Context, id string) bool {
	existe, err := uc.repo.Exists(ctx, id)
	if err != nil {
		return false
	}
	return existe
}

// Create da de alta un proveedor. Rechaza id ya usado.
func (uc *ProveedorUseCase) Create(ctx context.Context, in dto.ProveedorRequest) (*dto.ProveedorCreadoResponse, error) {
	id := strings.TrimSpace(in.ResolverID())
	nombre := deref(in.Nombre)
	if id == "" || nombre == "" {
		return nil, domain.Invalid("ID proveedor y nombre son obligatorios")
	}
	existe, err := uc.repo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, domain.Duplicated("Ya existe un proveedor con ese ID")
	}

	p := entity.Proveedor{
		IDProveedor: id,
		Nombre:      nombre,
		Telefono:    deref(in.Telefono),
		Email:       deref(in.Email),
		Direccion:   deref(in.Direccion),
		Contacto:    deref(in.Contacto),
	}
	if err := uc.repo.Insert(ctx, p); err != nil {
		return nil, err
	}
	return &dto.ProveedorCreadoResponse{Success: true, Proveedor: dto.NewProveedorResponse(p)}, nil
}

// Update actualiza un proveedor; un id distinto al de la ruta lo renombra
// previa verificación de duplicado.
func (uc *ProveedorUseCase) Update(ctx context.Context, id string, in dto.ProveedorRequest) error {
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
			return domain.Duplicated("Ya existe un proveedor con ese ID")
		}
	}

	return uc.repo.Update(ctx, id, entity.Proveedor{
		IDProveedor: nuevoID,
		Nombre:      nombre,
		Telefono:    deref(in.Telefono),
		Email:       deref(in.Email),
		Direccion:   deref(in.Direccion),
		Contacto:    deref(in.Contacto),
	})
}

// Delete elimina el proveedor por id.
func (uc *ProveedorUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
