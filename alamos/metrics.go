package alamos

import (
	"sync"
	"time"
)

type Metric[T any] interface {
	Record(T)
	Values() []T
	Count() int
}

type Numeric interface {
	~float64 | ~float32 | ~int | ~int64 | ~int32 | ~int16 | ~int8 | ~uint64 | ~uint32 | ~uint16 | ~uint8
}

// |||||| GAUGE ||||||

// gauge keeps the most recently recorded value and the number of recordings.
type gauge[T Numeric] struct {
	mu    sync.Mutex
	k     string
	count int
	value T
}

func NewGauge[T Numeric](exp Experiment, key string) Metric[T] {
	if exp == nil {
		return empty[T]{}
	}
	m := &gauge[T]{k: key}
	exp.addMetric(m)
	return m
}

func (g *gauge[T]) key() string { return g.k }

func (g *gauge[T]) report() interface{} { return g.Values()[0] }

func (g *gauge[T]) Count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.count
}

func (g *gauge[T]) Values() []T {
	g.mu.Lock()
	defer g.mu.Unlock()
	return []T{g.value}
}

func (g *gauge[T]) Record(v T) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.count++
	g.value = v
}

// |||||| SERIES ||||||

// series keeps every recorded value.
type series[T any] struct {
	mu     sync.Mutex
	k      string
	values []T
}

func NewSeries[T any](exp Experiment, key string) Metric[T] {
	if exp == nil {
		return empty[T]{}
	}
	m := &series[T]{k: key, values: []T{}}
	exp.addMetric(m)
	return m
}

func (s *series[T]) key() string { return s.k }

func (s *series[T]) report() interface{} { return s.Values() }

func (s *series[T]) Values() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.values...)
}

func (s *series[T]) Record(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = append(s.values, v)
}

func (s *series[T]) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values)
}

// |||||| EMPTY ||||||

type empty[T any] struct{}

func (empty[T]) Values() []T { return nil }

func (empty[T]) Record(T) {}

func (empty[T]) Count() int { return 0 }

var _ Metric[time.Duration] = empty[time.Duration]{}
