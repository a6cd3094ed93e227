package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// ErrPartialWrite indica que la cantidad del artículo se actualizó pero el
// registro de auditoría no pudo escribirse. Las dos escrituras no comparten
// transacción, así que el caller debe reportar el fallo parcial tal cual.
var ErrPartialWrite = errors.New("cantidad actualizada pero auditoría no registrada")
