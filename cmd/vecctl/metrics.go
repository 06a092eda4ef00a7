package main

import (
	"io"

	"github.com/VictoriaMetrics/metrics"

	"github.com/joshuapare/rawvec/alloc"
)

// writeMetrics exports allocator traffic and the final vector shape in
// Prometheus text format.
func writeMetrics(w io.Writer, st alloc.Stats, size, capacity int) {
	s := metrics.NewSet()
	s.NewCounter("vecctl_allocs_total").Set(uint64(st.Allocs))
	s.NewCounter("vecctl_reallocs_total").Set(uint64(st.Reallocs))
	s.NewCounter("vecctl_frees_total").Set(uint64(st.Frees))
	s.NewCounter("vecctl_alloc_failures_total").Set(uint64(st.Failures))
	s.NewGauge("vecctl_live_slots", func() float64 { return float64(st.LiveSlots) })
	s.NewGauge("vecctl_peak_slots", func() float64 { return float64(st.PeakSlots) })
	s.NewGauge("vecctl_vector_size", func() float64 { return float64(size) })
	s.NewGauge("vecctl_vector_capacity", func() float64 { return float64(capacity) })
	s.WritePrometheus(w)
}
