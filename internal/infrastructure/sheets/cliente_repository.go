package sheets

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jpcarreon/ventastock/internal/domain"
	"github.com/jpcarreon/ventastock/internal/domain/entity"
	"github.com/jpcarreon/ventastock/internal/domain/repository"
)

const tabClientes = "clientes"

var (
	aliasClienteID        = []string{"id", "idcliente", "id cliente", "codigo"}
	aliasClienteNombre    = []string{"nombre"}
	aliasClienteTelefono  = []string{"telefono", "phone"}
	aliasClienteEmail     = []string{"email", "correo", "e-mail"}
	aliasClienteDireccion = []string{"direccion", "dir", "address"}
	aliasClienteFecha     = []string{"fechacreacion", "fecha creacion", "fecha_creacion", "fecha alta", "fecha", "fechacrea", "creado", "created"}
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo persistencia de clientes sobre la pestaña 'clientes'.
// Columnas: idcliente, nombre, telefono, email, direccion, fechaCreacion.
type ClienteRepo struct {
	store TabStore
}

// NewClienteRepository construye el adaptador de persistencia para clientes.
func NewClienteRepository(store TabStore) *ClienteRepo {
	return &ClienteRepo{store: store}
}

// List devuelve todos los clientes. Fechas que llegan como número de serie de
// hoja de cálculo se convierten a YYYY-MM-DD.
func (r *ClienteRepo) List(ctx context.Context) ([]entity.Cliente, error) {
	rows, err := r.store.ReadAll(ctx, tabClientes)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return []entity.Cliente{}, nil
	}
	res := NewResolver(tabClientes, rows[0])
	idCol, _ := res.Col(aliasClienteID...)
	nombreCol, _ := res.Col(aliasClienteNombre...)
	telCol, _ := res.Col(aliasClienteTelefono...)
	emailCol, _ := res.Col(aliasClienteEmail...)
	dirCol, _ := res.Col(aliasClienteDireccion...)
	fechaCol, ok := res.Col(aliasClienteFecha...)
	if !ok {
		// Hojas viejas sin encabezado de fecha la guardan en la columna F.
		fechaCol = 5
	}

	out := make([]entity.Cliente, 0, len(rows)-1)
	for _, row := range rows[1:] {
		out = append(out, entity.Cliente{
			IDCliente:     Cell(row, idCol),
			Nombre:        Cell(row, nombreCol),
			Telefono:      Cell(row, telCol),
			Email:         Cell(row, emailCol),
			Direccion:     Cell(row, dirCol),
			FechaCreacion: fechaCell(row, fechaCol),
		})
	}
	return out, nil
}

// Exists indica si ya existe un cliente con ese id.
func (r *ClienteRepo) Exists(ctx context.Context, id string) (bool, error) {
	clientes, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	for i := range clientes {
		if sameKey(clientes[i].IDCliente, id) {
			return true, nil
		}
	}
	return false, nil
}

// NextID genera el siguiente idcliente secuencial: max(ids numéricos) + 1.
func (r *ClienteRepo) NextID(ctx context.Context) (string, error) {
	clientes, err := r.List(ctx)
	if err != nil {
		return "", err
	}
	max := 0
	for _, c := range clientes {
		if n, err := strconv.Atoi(c.IDCliente); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1), nil
}

// Insert agrega el cliente como una fila nueva.
func (r *ClienteRepo) Insert(ctx context.Context, c entity.Cliente) error {
	return r.store.Append(ctx, tabClientes, [][]interface{}{clienteRow(c)})
}

// Update localiza la fila por id y la sobrescribe completa.
func (r *ClienteRepo) Update(ctx context.Context, idAntiguo string, c entity.Cliente) error {
	rows, err := r.store.ReadAll(ctx, tabClientes)
	if err != nil {
		return err
	}
	idx, err := r.locate(rows, idAntiguo)
	if err != nil {
		return err
	}
	return r.store.UpdateRow(ctx, tabClientes, idx, clienteRow(c))
}

// Delete localiza la fila por id y la elimina.
func (r *ClienteRepo) Delete(ctx context.Context, id string) error {
	rows, err := r.store.ReadAll(ctx, tabClientes)
	if err != nil {
		return err
	}
	idx, err := r.locate(rows, id)
	if err != nil {
		return err
	}
	return r.store.DeleteRow(ctx, tabClientes, idx)
}

func (r *ClienteRepo) locate(rows [][]string, id string) (int, error) {
	if len(rows) < 2 {
		return -1, fmt.Errorf("cliente %s: %w", id, domain.ErrNotFound)
	}
	res := NewResolver(tabClientes, rows[0])
	idCol, err := res.RequireCol("id", aliasClienteID...)
	if err != nil {
		return -1, err
	}
	idx := findRow(rows, idCol, id)
	if idx < 0 {
		return -1, fmt.Errorf("cliente %s: %w", id, domain.ErrNotFound)
	}
	return idx, nil
}

// fechaCell lee la fecha tolerando el número de serie de hoja de cálculo
// (días desde 1899-12-30) que Sheets devuelve para celdas con formato de fecha.
func fechaCell(row []string, i int) string {
	s := Cell(row, i)
	if s == "" {
		return ""
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil && n > 20000 {
		t := time.Unix(int64((n-25569)*86400), 0).UTC()
		return t.Format("2006-01-02")
	}
	return s
}

// clienteRow orden canónico de columnas al escribir (A:F).
func clienteRow(c entity.Cliente) []interface{} {
	return []interface{}{
		c.IDCliente,
		c.Nombre,
		c.Telefono,
		c.Email,
		c.Direccion,
		c.FechaCreacion,
	}
}
