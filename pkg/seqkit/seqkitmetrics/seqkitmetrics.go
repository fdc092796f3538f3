// Package seqkitmetrics provides Prometheus instrumentation for seqkit sequences.
//
// Wrap any sequence with Instrument to count the cursors it hands out,
// the elements it yields, the faults it reports, and to observe how long each Next call suspends.
//
//	m, err := seqkitmetrics.New(seqkitmetrics.WithRegisterer(registry))
//	if err != nil {
//		return err
//	}
//	orders = seqkitmetrics.Instrument(m, orders, "orders")
//
// Available metrics, with the default "seqkit" namespace:
//
//   - seqkit_cursors_total: number of cursors acquired
//   - seqkit_elements_total: number of elements yielded
//   - seqkit_faults_total: number of faulted Next calls
//   - seqkit_next_duration_seconds: time spent in Next
//
// Every metric has a "sequence" label with the name given to Instrument.
package seqkitmetrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.llib.dev/frameless/port/option"

	"go.llib.dev/asyncseq/pkg/seqkit"
)

// Config holds configuration for metrics collection.
type Config struct {
	// Registerer is the Prometheus registerer to use.
	Registerer prometheus.Registerer
	// Namespace overrides the default "seqkit" namespace for metrics.
	Namespace string
	// Buckets of the Next duration histogram.
	Buckets []float64
}

// DefaultConfig returns the default metrics configuration.
func DefaultConfig() Config {
	return Config{
		Registerer: prometheus.DefaultRegisterer,
		Namespace:  "seqkit",
		Buckets:    prometheus.DefBuckets,
	}
}

type Option = option.Option[Config]

func WithRegisterer(r prometheus.Registerer) Option {
	return option.Func[Config](func(c *Config) { c.Registerer = r })
}

func WithNamespace(ns string) Option {
	return option.Func[Config](func(c *Config) { c.Namespace = ns })
}

func WithBuckets(buckets ...float64) Option {
	return option.Func[Config](func(c *Config) { c.Buckets = buckets })
}

// Metrics is the set of collectors shared by instrumented sequences.
type Metrics struct {
	Cursors      *prometheus.CounterVec
	Elements     *prometheus.CounterVec
	Faults       *prometheus.CounterVec
	NextDuration *prometheus.HistogramVec
}

const labelSequence = "sequence"

// New creates the collectors and registers them.
// When an equivalent collector is already registered, it is reused,
// so New can be called more than once with the same registerer.
func New(opts ...Option) (*Metrics, error) {
	c := DefaultConfig()
	for _, opt := range opts {
		opt.Configure(&c)
	}
	if c.Registerer == nil {
		c.Registerer = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		Cursors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: c.Namespace,
			Name:      "cursors_total",
			Help:      "Total number of cursors acquired from a sequence",
		}, []string{labelSequence}),
		Elements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: c.Namespace,
			Name:      "elements_total",
			Help:      "Total number of elements yielded by a sequence",
		}, []string{labelSequence}),
		Faults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: c.Namespace,
			Name:      "faults_total",
			Help:      "Total number of faulted Next calls of a sequence",
		}, []string{labelSequence}),
		NextDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: c.Namespace,
			Name:      "next_duration_seconds",
			Help:      "Time spent waiting for the next element of a sequence",
			Buckets:   c.Buckets,
		}, []string{labelSequence}),
	}
	var err error
	if m.Cursors, err = register(c.Registerer, m.Cursors); err != nil {
		return nil, err
	}
	if m.Elements, err = register(c.Registerer, m.Elements); err != nil {
		return nil, err
	}
	if m.Faults, err = register(c.Registerer, m.Faults); err != nil {
		return nil, err
	}
	if m.NextDuration, err = register(c.Registerer, m.NextDuration); err != nil {
		return nil, err
	}
	return m, nil
}

func register[C prometheus.Collector](r prometheus.Registerer, c C) (C, error) {
	err := r.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	return c, err
}

// Instrument wraps src, so that every cursor it hands out reports to m under the given name.
func Instrument[T any](m *Metrics, src seqkit.Sequence[T], name string) seqkit.Sequence[T] {
	if m == nil {
		return seqkit.Error[T](seqkit.ErrInvalidArgument.F("metrics is nil"))
	}
	if seqkit.IsNil(src) {
		return seqkit.Error[T](seqkit.ErrInvalidArgument.F("source is nil"))
	}
	var (
		cursors  = m.Cursors.WithLabelValues(name)
		elements = m.Elements.WithLabelValues(name)
		faults   = m.Faults.WithLabelValues(name)
		duration = m.NextDuration.WithLabelValues(name)
	)
	return seqkit.SequenceFunc[T](func() seqkit.Cursor[T] {
		cursors.Inc()
		return &cursor[T]{
			Cursor:   src.Iterate(),
			elements: elements,
			faults:   faults,
			duration: duration,
		}
	})
}

type cursor[T any] struct {
	seqkit.Cursor[T]
	elements prometheus.Counter
	faults   prometheus.Counter
	duration prometheus.Observer
}

func (c *cursor[T]) Next(ctx context.Context) (bool, error) {
	start := time.Now()
	ok, err := c.Cursor.Next(ctx)
	c.duration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.faults.Inc()
		return false, err
	}
	if ok {
		c.elements.Inc()
	}
	return ok, nil
}
