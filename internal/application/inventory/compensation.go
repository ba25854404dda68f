package inventory

import (
	"context"

	"github.com/jpcarreon/ventastock/pkg/logger"
)

// Compensaciones pila de deshacer para operaciones multi-paso sobre la hoja.
// Sheets no tiene transacciones: cada paso que muta stock registra aquí su
// inverso, y si un paso posterior falla se ejecutan en orden LIFO. Las
// compensaciones son de mejor esfuerzo: un fallo al deshacer se registra y
// no detiene el resto de la pila.
type Compensaciones struct {
	log   *logger.Logger
	pasos []paso
}

type paso struct {
	nombre string
	fn     func(context.Context) error
}

// NewCompensaciones crea una pila vacía.
func NewCompensaciones(log *logger.Logger) *Compensaciones {
	return &Compensaciones{log: log}
}

// Push registra un paso de deshacer con un nombre para el log.
func (c *Compensaciones) Push(nombre string, fn func(context.Context) error) {
	c.pasos = append(c.pasos, paso{nombre: nombre, fn: fn})
}

// Run ejecuta los pasos en orden inverso al registro. Devuelve cuántos
// fallaron; los fallos quedan en el log con el nombre del paso.
func (c *Compensaciones) Run(ctx context.Context) int {
	fallos := 0
	for i := len(c.pasos) - 1; i >= 0; i-- {
		p := c.pasos[i]
		if err := p.fn(ctx); err != nil {
			fallos++
			c.log.Error().
				Err(err).
				Str("compensacion", p.nombre).
				Msg("fallo al compensar, se continúa con el resto")
		}
	}
	c.pasos = c.pasos[:0]
	return fallos
}

// Len cantidad de pasos pendientes.
func (c *Compensaciones) Len() int { return len(c.pasos) }
