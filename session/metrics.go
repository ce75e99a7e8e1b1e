package session

import (
	"github.com/dh1tw/opusbox/audiocodec"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects prometheus metrics of sessions. A nil *Metrics is valid
// and discards all observations.
type Metrics struct {
	sessionsActive prometheus.Gauge
	framesEncoded  prometheus.Counter
	framesDecoded  prometheus.Counter
	encodedBytes   prometheus.Counter
	codecErrors    *prometheus.CounterVec
}

// NewMetrics creates the session metrics and registers them with reg. If reg
// is nil, the metrics are created but not registered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "opusbox",
			Name:      "sessions_active",
			Help:      "Number of codec sessions which have not been destroyed",
		}),
		framesEncoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "opusbox",
			Name:      "frames_encoded_total",
			Help:      "Total number of successfully encoded frames",
		}),
		framesDecoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "opusbox",
			Name:      "frames_decoded_total",
			Help:      "Total number of successfully decoded packets",
		}),
		encodedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "opusbox",
			Name:      "encoded_bytes_total",
			Help:      "Total number of bytes produced by the encoders",
		}),
		codecErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "opusbox",
			Name:      "codec_errors_total",
			Help:      "Negative status codes reported by the codec",
		}, []string{"op", "category"}),
	}

	if reg != nil {
		reg.MustRegister(m.sessionsActive, m.framesEncoded, m.framesDecoded,
			m.encodedBytes, m.codecErrors)
	}

	return m
}

func (m *Metrics) sessionCreated() {
	if m == nil {
		return
	}
	m.sessionsActive.Inc()
}

func (m *Metrics) sessionDestroyed() {
	if m == nil {
		return
	}
	m.sessionsActive.Dec()
}

func (m *Metrics) encoded(bytes int) {
	if m == nil {
		return
	}
	m.framesEncoded.Inc()
	m.encodedBytes.Add(float64(bytes))
}

func (m *Metrics) decoded() {
	if m == nil {
		return
	}
	m.framesDecoded.Inc()
}

func (m *Metrics) codecError(op string, code int) {
	if m == nil {
		return
	}
	m.codecErrors.WithLabelValues(op, audiocodec.Lookup(code).String()).Inc()
}
