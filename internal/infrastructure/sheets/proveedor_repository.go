package sheets

import (
	"context"
	"fmt"

	"github.com/jpcarreon/ventastock/internal/domain"
	"github.com/jpcarreon/ventastock/internal/domain/entity"
	"github.com/jpcarreon/ventastock/internal/domain/repository"
)

const tabProveedores = "proveedores"

var (
	aliasProveedorID        = []string{"id", "idproveedor", "id proveedor", "codigo"}
	aliasProveedorNombre    = []string{"nombre"}
	aliasProveedorTelefono  = []string{"telefono", "phone"}
	aliasProveedorEmail     = []string{"email", "correo", "e-mail"}
	aliasProveedorDireccion = []string{"direccion", "dir", "address"}
	aliasProveedorContacto  = []string{"contacto", "persona contacto"}
)

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo persistencia de proveedores sobre la pestaña 'proveedores'.
type ProveedorRepo struct {
	store TabStore
}

// NewProveedorRepository construye el adaptador de persistencia para proveedores.
func NewProveedorRepository(store TabStore) *ProveedorRepo {
	return &ProveedorRepo{store: store}
}

// List devuelve todos los proveedores.
func (r *ProveedorRepo) List(ctx context.Context) ([]entity.Proveedor, error) {
	rows, err := r.store.ReadAll(ctx, tabProveedores)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return []entity.Proveedor{}, nil
	}
	res := NewResolver(tabProveedores, rows[0])
	idCol, _ := res.Col(aliasProveedorID...)
	nombreCol, _ := res.Col(aliasProveedorNombre...)
	telCol, _ := res.Col(aliasProveedorTelefono...)
	emailCol, _ := res.Col(aliasProveedorEmail...)
	dirCol, _ := res.Col(aliasProveedorDireccion...)
	contCol, _ := res.Col(aliasProveedorContacto...)

	out := make([]entity.Proveedor, 0, len(rows)-1)
	for _, row := range rows[1:] {
		out = append(out, entity.Proveedor{
			IDProveedor: Cell(row, idCol),
			Nombre:      Cell(row, nombreCol),
			Telefono:    Cell(row, telCol),
			Email:       Cell(row, emailCol),
			Direccion:   Cell(row, dirCol),
			Contacto:    Cell(row, contCol),
		})
	}
	return out, nil
}

// Exists indica si ya existe un proveedor con ese id.
func (r *ProveedorRepo) Exists(ctx context.Context, id string) (bool, error) {
	proveedores, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	for i := range proveedores {
		if sameKey(proveedores[i].IDProveedor, id) {
			return true, nil
		}
	}
	return false, nil
}

// Insert agrega el proveedor como una fila nueva.
func (r *ProveedorRepo) Insert(ctx context.Context, p entity.Proveedor) error {
	return r.store.Append(ctx, tabProveedores, [][]interface{}{proveedorRow(p)})
}

// Update localiza la fila por id y la sobrescribe completa.
func (r *ProveedorRepo) Update(ctx context.Context, idAntiguo string, p entity.Proveedor) error {
	rows, err := r.store.ReadAll(ctx, tabProveedores)
	if err != nil {
		return err
	}
	idx, err := r.locate(rows, idAntiguo)
	if err != nil {
		return err
	}
	return r.store.UpdateRow(ctx, tabProveedores, idx, proveedorRow(p))
}

// Delete localiza la fila por id y la elimina.
func (r *ProveedorRepo) Delete(ctx context.Context, id string) error {
	rows, err := r.store.ReadAll(ctx, tabProveedores)
	if err != nil {
		return err
	}
	idx, err := r.locate(rows, id)
	if err != nil {
		return err
	}
	return r.store.DeleteRow(ctx, tabProveedores, idx)
}

func (r *ProveedorRepo) locate(rows [][]string, id string) (int, error) {
	if len(rows) < 2 {
		return -1, fmt.Errorf("proveedor %s: %w", id, domain.ErrNotFound)
	}
	res := NewResolver(tabProveedores, rows[0])
	idCol, err := res.RequireCol("id", aliasProveedorID...)
	if err != nil {
		return -1, err
	}
	idx := findRow(rows, idCol, id)
	if idx < 0 {
		return -1, fmt.Errorf("proveedor %s: %w", id, domain.ErrNotFound)
	}
	return idx, nil
}

// proveedorRow orden canónico de columnas al escribir (A:F).
func proveedorRow(p entity.Proveedor) []interface{} {
	return []interface{}{
		p.IDProveedor,
		p.Nombre,
		p.Telefono,
		p.Email,
		p.Direccion,
		p.Contacto,
	}
}
