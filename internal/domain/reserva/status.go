package reserva

// ===============================
// Reservation Status
// ===============================

type Estado string

const (
	EstadoPendiente  Estado = "pendiente"
	EstadoCompletada Estado = "completada"
	EstadoCancelada  Estado = "cancelada"
)

// IsValidEstado checks membership in the three-value set. Transitions are
// deliberately unconstrained: any status may move to any other.
func IsValidEstado(e string) bool {
	switch Estado(e) {
	case EstadoPendiente, EstadoCompletada, EstadoCancelada:
		return true
	}
	return false
}

// InitialEstado is forced on every new reservation regardless of input.
func InitialEstado() Estado {
	return EstadoPendiente
}
