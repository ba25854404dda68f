package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrSchema            = errors.New("esquema de hoja inválido")
)

// MensajeError error con mensaje listo para el usuario, encadenado a uno de
// los centinelas para que el handler resuelva el código de estado.
type MensajeError struct {
	Msg  string
	Base error
}

func (e *MensajeError) Error() string { return e.Msg }
func (e *MensajeError) Unwrap() error { return e.Base }

// Invalid error de validación (400) con mensaje para el usuario.
func Invalid(msg string) error { return &MensajeError{Msg: msg, Base: ErrInvalidInput} }

// Duplicated colisión de llave o código de barras (400).
func Duplicated(msg string) error { return &MensajeError{Msg: msg, Base: ErrDuplicate} }

// NotFound recurso inexistente (404) con mensaje para el usuario.
func NotFound(msg string) error { return &MensajeError{Msg: msg, Base: ErrNotFound} }

// StockInsuficienteError lleva las cantidades del rechazo para que el mensaje
// al usuario incluya disponible y solicitado.
type StockInsuficienteError struct {
	IDArticulo string
	Disponible int
	Solicitado int
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s. Disponible: %d, solicitado: %d",
		e.IDArticulo, e.Disponible, e.Solicitado)
}

func (e *StockInsuficienteError) Unwrap() error { return ErrInsufficientStock }

// ColumnaNoEncontradaError señala que un encabezado requerido no existe en la
// pestaña; el mensaje lista los encabezados realmente encontrados.
type ColumnaNoEncontradaError struct {
	Tab         string
	Campo       string
	Encabezados []string
}

func (e *ColumnaNoEncontradaError) Error() string {
	return fmt.Sprintf("columna %q no encontrada en %s. Columnas disponibles: [%s]",
		e.Campo, e.Tab, strings.Join(e.Encabezados, ", "))
}

func (e *ColumnaNoEncontradaError) Unwrap() error { return ErrSchema }
