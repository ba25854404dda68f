package entity

// Proveedor registro de la pestaña 'proveedores'.
type Proveedor struct {
	IDProveedor string
	Nombre      string
	Telefono    string
	Email       string
	Direccion   string
	Contacto    string
}
