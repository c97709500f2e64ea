// Package observe exposes game metrics and a read-only spectator feed over
// HTTP. It never touches game state directly: the game loop reports events
// through Metrics and publishes immutable snapshots to a Hub.
package observe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vovakirdan/button-smasher/internal/core"
	"github.com/vovakirdan/button-smasher/internal/games/smasher"
	"github.com/vovakirdan/button-smasher/internal/storage"
)

// Metrics records gameplay counters on its own registry.
// Label values are bounded: difficulty and phase names only.
type Metrics struct {
	registry *prometheus.Registry

	phaseChanges  *prometheus.CounterVec
	hits          *prometheus.CounterVec
	pressMisses   *prometheus.CounterVec
	cueMisses     *prometheus.CounterVec
	runs          *prometheus.CounterVec
	runScore      *prometheus.HistogramVec
	activePlayers prometheus.Gauge

	wsClients  prometheus.Gauge
	wsMessages prometheus.Counter
	rejected   *prometheus.CounterVec
}

var _ smasher.Observer = (*Metrics)(nil)

// NewMetrics creates the collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		phaseChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "smasher_phase_transitions_total",
			Help: "Phase transitions by target phase",
		}, []string{"phase"}),
		hits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "smasher_cue_hits_total",
			Help: "Cues hit by a matching press",
		}, []string{"difficulty"}),
		pressMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "smasher_press_misses_total",
			Help: "Lane presses with no cue in the hit zone",
		}, []string{"difficulty"}),
		cueMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "smasher_cue_misses_total",
			Help: "Cues that fell past the bottom edge",
		}, []string{"difficulty"}),
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "smasher_runs_total",
			Help: "Finished runs",
		}, []string{"difficulty"}),
		runScore: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "smasher_run_score",
			Help:    "Final score of finished runs",
			Buckets: prometheus.LinearBuckets(0, 50, 10),
		}, []string{"difficulty"}),
		activePlayers: factory.NewGauge(prometheus.GaugeOpts{
			Name: "smasher_active_players",
			Help: "Sessions currently in a run",
		}),
		wsClients: factory.NewGauge(prometheus.GaugeOpts{
			Name: "smasher_websocket_clients",
			Help: "Connected spectator websockets",
		}),
		wsMessages: factory.NewCounter(prometheus.CounterOpts{
			Name: "smasher_websocket_messages_total",
			Help: "Snapshots sent to spectators",
		}),
		rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "smasher_connections_rejected_total",
			Help: "Spectator connections rejected",
		}, []string{"reason"}),
	}
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// PhaseChanged implements smasher.Observer.
func (m *Metrics) PhaseChanged(from, to smasher.Phase) {
	m.phaseChanges.WithLabelValues(to.String()).Inc()
	switch {
	case to == smasher.PhasePlaying && from != smasher.PhasePlaying:
		m.activePlayers.Inc()
	case from == smasher.PhasePlaying && to != smasher.PhasePlaying:
		m.activePlayers.Dec()
	}
}

// CueHit implements smasher.Observer.
func (m *Metrics) CueHit(d core.Difficulty) {
	m.hits.WithLabelValues(d.String()).Inc()
}

// PressMissed implements smasher.Observer.
func (m *Metrics) PressMissed(d core.Difficulty) {
	m.pressMisses.WithLabelValues(d.String()).Inc()
}

// CueMissed implements smasher.Observer.
func (m *Metrics) CueMissed(d core.Difficulty) {
	m.cueMisses.WithLabelValues(d.String()).Inc()
}

// RunFinished implements smasher.Observer.
func (m *Metrics) RunFinished(run storage.Run) {
	m.runs.WithLabelValues(run.Difficulty.String()).Inc()
	m.runScore.WithLabelValues(run.Difficulty.String()).Observe(float64(run.Score))
}

func (m *Metrics) clientConnected()    { m.wsClients.Inc() }
func (m *Metrics) clientDisconnected() { m.wsClients.Dec() }
func (m *Metrics) messageSent()        { m.wsMessages.Inc() }

func (m *Metrics) rejectConnection(reason string) {
	m.rejected.WithLabelValues(reason).Inc()
}
