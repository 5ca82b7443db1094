package reserva

import "errors"

// ErrNotFound is returned when no reservation matches the given id.
var ErrNotFound = errors.New("reserva not found")

// ErrInvalidEstado is returned when a status update names a value outside
// the pendiente/completada/cancelada set.
var ErrInvalidEstado = errors.New("invalid estado")
