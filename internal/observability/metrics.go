package observability

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registerOnce sync.Once

	packetsEncoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mobwire",
			Subsystem: "codec",
			Name:      "packets_encoded_total",
			Help:      "Packets encoded, by packet layout.",
		},
		[]string{"packet"},
	)
	packetsDecoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mobwire",
			Subsystem: "codec",
			Name:      "packets_decoded_total",
			Help:      "Packets decoded, by packet layout.",
		},
		[]string{"packet"},
	)
	packetBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mobwire",
			Subsystem: "codec",
			Name:      "packet_bytes",
			Help:      "Framed packet size in bytes.",
			Buckets:   prometheus.ExponentialBuckets(8, 4, 8),
		},
		[]string{"direction"},
	)
	decodeFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mobwire",
			Subsystem: "codec",
			Name:      "decode_failures_total",
			Help:      "Packet decode failures, by stage and reason.",
		},
		[]string{"stage", "reason"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(packetsEncoded, packetsDecoded, packetBytes, decodeFailures)
	})
}

func RecordEncode(packet string, size int) {
	RegisterMetrics()
	packetsEncoded.WithLabelValues(packet).Inc()
	packetBytes.WithLabelValues("encode").Observe(float64(size))
}

func RecordDecode(packet string, size int) {
	RegisterMetrics()
	packetsDecoded.WithLabelValues(packet).Inc()
	packetBytes.WithLabelValues("decode").Observe(float64(size))
}

func RecordDecodeFailure(stage, reason string) {
	RegisterMetrics()
	decodeFailures.WithLabelValues(stage, reason).Inc()
}

// Handler serves the registered metrics.
func Handler() http.Handler {
	RegisterMetrics()
	return promhttp.Handler()
}
