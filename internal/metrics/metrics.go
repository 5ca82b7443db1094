package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	reservasCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barberia",
			Name:      "reservas_created_total",
			Help:      "Count of reservations created, by booking kind.",
		},
		[]string{"tipo"},
	)

	estadoUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barberia",
			Name:      "reserva_estado_updates_total",
			Help:      "Count of reservation status updates, by new status.",
		},
		[]string{"estado"},
	)

	forecastLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barberia",
			Name:      "forecast_lookups_total",
			Help:      "Count of weather forecast lookups, by outcome.",
		},
		[]string{"outcome"},
	)

	logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barberia",
			Name:      "logins_total",
			Help:      "Count of login attempts, by outcome.",
		},
		[]string{"outcome"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(reservasCreated, estadoUpdates, forecastLookups, logins)
	})
}

func IncReservaCreated(tipo string) {
	reservasCreated.WithLabelValues(tipo).Inc()
}

func IncEstadoUpdate(estado string) {
	estadoUpdates.WithLabelValues(estado).Inc()
}

func IncForecastLookup(outcome string) {
	forecastLookups.WithLabelValues(outcome).Inc()
}

func IncLogin(outcome string) {
	logins.WithLabelValues(outcome).Inc()
}
