// Package alamos is a small in-process metrics library. An Experiment groups
// named metrics and sub-experiments. A nil Experiment is valid everywhere: the
// metrics created from it record nothing.
package alamos

import "sync"

type Experiment interface {
	// Key returns the name of the experiment.
	Key() string
	// Sub creates (or returns the existing) child experiment with the given key.
	Sub(key string) Experiment
	// Metrics returns a snapshot of the metrics registered on the experiment.
	Metrics() map[string]entry
	// Report returns the values of every metric in the experiment and its
	// children, keyed by metric and sub-experiment key.
	Report() map[string]interface{}
	addMetric(entry)
}

func New(key string) Experiment {
	return &experiment{
		key:      key,
		children: make(map[string]Experiment),
		metrics:  make(map[string]entry),
	}
}

// Sub returns a child experiment of exp, or nil if exp is nil.
func Sub(exp Experiment, key string) Experiment {
	if exp == nil {
		return nil
	}
	return exp.Sub(key)
}

type experiment struct {
	mu       sync.Mutex
	key      string
	children map[string]Experiment
	metrics  map[string]entry
}

func (e *experiment) Key() string { return e.key }

func (e *experiment) Sub(key string) Experiment {
	e.mu.Lock()
	defer e.mu.Unlock()
	if exp, ok := e.children[key]; ok {
		return exp
	}
	exp := New(key)
	e.children[key] = exp
	return exp
}

func (e *experiment) Metrics() map[string]entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	m := make(map[string]entry, len(e.metrics))
	for k, v := range e.metrics {
		m[k] = v
	}
	return m
}

func (e *experiment) Report() map[string]interface{} {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := make(map[string]interface{}, len(e.metrics)+len(e.children))
	for k, m := range e.metrics {
		r[k] = m.report()
	}
	for k, c := range e.children {
		r[k] = c.Report()
	}
	return r
}

func (e *experiment) addMetric(m entry) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.metrics[m.key()] = m
}

type entry interface {
	key() string
	report() interface{}
}
