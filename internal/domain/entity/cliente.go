package entity

// Cliente registro de la pestaña 'clientes'. El id es secuencial generado
// por el servidor; FechaCreacion se fija al crear.
type Cliente struct {
	IDCliente     string
	Nombre        string
	Telefono      string
	Email         string
	Direccion     string
	FechaCreacion string // YYYY-MM-DD
}
