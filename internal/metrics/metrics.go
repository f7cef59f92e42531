package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Имена меток
const (
	LabelCause   = "cause"
	LabelAction  = "action"
	LabelOutcome = "outcome"
	LabelTrigger = "trigger"
)

// Исходы команд и сохранений
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// Simulation Metrics
var (
	DayRollovers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cloverfield_day_rollovers_total",
			Help: "Number of in-game day rollovers by cause (sleep or passed_out)",
		},
		[]string{LabelCause},
	)

	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cloverfield_commands_total",
			Help: "Discrete player commands processed by the simulation",
		},
		[]string{LabelAction, LabelOutcome},
	)

	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cloverfield_tick_seconds",
			Help:    "Wall time spent inside one simulation tick",
			Buckets: []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .025},
		},
	)
)

// Persistence Metrics
var (
	SavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cloverfield_saves_total",
			Help: "Save attempts by trigger (manual, autosave, rollover, shutdown) and outcome",
		},
		[]string{LabelTrigger, LabelOutcome},
	)
)

// Transport Metrics
var (
	ConnectedClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cloverfield_connected_clients",
			Help: "Currently connected websocket clients",
		},
	)
)
