// Package telemetry records frame and system timings in an in-memory metrics sink.
package telemetry

import (
	"time"

	"github.com/armon/go-metrics"
	"github.com/rotisserie/eris"

	"github.com/plus3/starlight/system"
)

const (
	DefaultInterval = time.Second
	DefaultRetain   = time.Minute
)

// Recorder collects per-frame metrics.
type Recorder struct {
	metrics *metrics.Metrics
	sink    *metrics.InmemSink
}

// New creates a Recorder whose keys are prefixed with service.
func New(service string, interval, retain time.Duration) (*Recorder, error) {
	sink := metrics.NewInmemSink(interval, retain)

	conf := metrics.DefaultConfig(service)
	conf.EnableHostname = false
	conf.EnableRuntimeMetrics = false

	m, err := metrics.New(conf, sink)
	if err != nil {
		return nil, eris.Wrap(err, "create metrics")
	}
	return &Recorder{metrics: m, sink: sink}, nil
}

// RecordFrame counts a finished frame and samples its delta and update cost.
func (r *Recorder) RecordFrame(delta time.Duration, updateStart time.Time) {
	r.metrics.IncrCounter([]string{"frame", "count"}, 1)
	r.metrics.AddSample([]string{"frame", "delta_ms"}, float32(delta.Seconds()*1000))
	r.metrics.MeasureSince([]string{"frame", "update"}, updateStart)
}

// RecordSystems samples the last update duration of every system managed by m.
func (r *Recorder) RecordSystems(m *system.Manager) {
	m.Walk(func(_ system.System, stats system.SystemStats, _ int) {
		if stats.ExecutionCount == 0 {
			return
		}
		r.metrics.AddSample([]string{"system", stats.Name, "ms"}, float32(stats.LastDuration.Seconds()*1000))
	})
}

// SetGauge reports an arbitrary gauge such as the live entity count.
func (r *Recorder) SetGauge(key []string, value float32) {
	r.metrics.SetGauge(key, value)
}

// Data returns the retained metric intervals, newest last.
func (r *Recorder) Data() []*metrics.IntervalMetrics {
	return r.sink.Data()
}

// Counter sums the named counter over every retained interval.
func (r *Recorder) Counter(name string) int {
	total := 0
	for _, interval := range r.sink.Data() {
		interval.RLock()
		if c, ok := interval.Counters[name]; ok {
			total += c.Count
		}
		interval.RUnlock()
	}
	return total
}

// Sample returns the count and mean of the named sample over every retained interval.
func (r *Recorder) Sample(name string) (count int, mean float64) {
	var sum float64
	for _, interval := range r.sink.Data() {
		interval.RLock()
		if s, ok := interval.Samples[name]; ok {
			count += s.Count
			sum += s.Sum
		}
		interval.RUnlock()
	}
	if count > 0 {
		mean = sum / float64(count)
	}
	return count, mean
}

// Gauge returns the latest value of the named gauge.
func (r *Recorder) Gauge(name string) (float32, bool) {
	data := r.sink.Data()
	for i := len(data) - 1; i >= 0; i-- {
		data[i].RLock()
		g, ok := data[i].Gauges[name]
		data[i].RUnlock()
		if ok {
			return g.Value, true
		}
	}
	return 0, false
}
