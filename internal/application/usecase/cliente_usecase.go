package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jpcarreon/ventastock/internal/application/dto"
	"github.com/jpcarreon/ventastock/internal/domain"
	"github.com/jpcarreon/ventastock/internal/domain/entity"
	"github.com/jpcarreon/ventastock/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD para clientes. El id lo genera el servidor
// de forma secuencial y no cambia al editar.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// List lista todos los clientes.
func (uc *ClienteUseCase) List(ctx context.Context) (*dto.ClientesListResponse, error) {
	clientes, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		items = append(items, dto.NewClienteResponse(c))
	}
	return &dto.ClientesListResponse{Clientes: items}, nil
}

// Exists indica si el cliente existe; degrada a false ante cualquier error.
func (uc *ClienteUseCase) Exists(ctx context.Context, id string) bool {
	existe, err := uc.repo.Exists(ctx, id)
	if err != nil {
		return false
	}
	return existe
}

// Create da de alta un cliente con id secuencial y fecha de alta de hoy.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.ClienteRequest) (*dto.ClienteCreadoResponse, error) {
	nombre := deref(in.Nombre)
	if nombre == "" {
		return nil, domain.Invalid("El nombre es obligatorio")
	}
	id, err := uc.repo.NextID(ctx)
	if err != nil {
		return nil, err
	}
	c := entity.Cliente{
		IDCliente:     id,
		Nombre:        nombre,
		Telefono:      deref(in.Telefono),
		Email:         deref(in.Email),
		Direccion:     deref(in.Direccion),
		FechaCreacion: time.Now().Format("2006-01-02"),
	}
	if err := uc.repo.Insert(ctx, c); err != nil {
		return nil, err
	}
	return &dto.ClienteCreadoResponse{Success: true, Cliente: dto.NewClienteResponse(c)}, nil
}

// Update actualiza un cliente conservando su fecha de alta si el cuerpo no la
// trae. El id nunca cambia.
func (uc *ClienteUseCase) Update(ctx context.Context, id string, in dto.ClienteRequest) error {
	nombre := deref(in.Nombre)
	if nombre == "" {
		return domain.Invalid("Nombre es obligatorio")
	}

	fecha := deref(in.FechaCreacion)
	if fecha == "" {
		clientes, err := uc.repo.List(ctx)
		if err != nil {
			return err
		}
		for i := range clientes {
			if strings.EqualFold(strings.TrimSpace(clientes[i].IDCliente), strings.TrimSpace(id)) {
				fecha = clientes[i].FechaCreacion
				break
			}
		}
		if fecha == "" {
			fecha = time.Now().Format("2006-01-02")
		}
	}

	return uc.repo.Update(ctx, id, entity.Cliente{
		IDCliente:     id,
		Nombre:        nombre,
		Telefono:      deref(in.Telefono),
		Email:         deref(in.Email),
		Direccion:     deref(in.Direccion),
		FechaCreacion: fecha,
	})
}

// Delete elimina el cliente por id.
func (uc *ClienteUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
