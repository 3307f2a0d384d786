package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrInvalidWindow   = errors.New("rango de fechas inválido")
	ErrWindowTooLarge  = errors.New("rango de fechas excede el máximo permitido")
	ErrInvalidQuantity = errors.New("cantidad no entera o negativa")
	ErrUnauthorized    = errors.New("no autorizado")
)
