package model

import (
	"errors"
	"fmt"
)

// ErrModelNotFound reports a lookup or export of an unregistered name.
var ErrModelNotFound = errors.New("model not found in registry")

// Entry is one trained pipeline plus its recorded held-out accuracy.
type Entry struct {
	Pipeline *Pipeline
	Accuracy float64
}

// Registry is a named collection of trained pipelines. It is a plain
// value threaded explicitly through training, evaluation, and export;
// there is no ambient singleton.
type Registry struct {
	entries map[string]Entry
	order   []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register stores a pipeline under name. Registering an existing name
// overwrites silently (a retrain supersedes its prior result) but
// keeps the original registration position.
func (r *Registry) Register(name string, pipeline *Pipeline, accuracy float64) {
	if _, exists := r.entries[name]; !exists {
		r.order = append(r.order, name)
	}
	r.entries[name] = Entry{Pipeline: pipeline, Accuracy: accuracy}
}

// Get returns the pipeline registered under name.
func (r *Registry) Get(name string) (*Pipeline, error) {
	entry, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return entry.Pipeline, nil
}

// Lookup returns the full entry registered under name.
func (r *Registry) Lookup(name string) (Entry, error) {
	entry, ok := r.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrModelNotFound, name)
	}
	return entry, nil
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// All returns a copy of the name-to-entry mapping.
func (r *Registry) All() map[string]Entry {
	out := make(map[string]Entry, len(r.entries))
	for name, entry := range r.entries {
		out[name] = entry
	}
	return out
}

// Best returns the name with the highest recorded accuracy. Ties are
// broken by registration order, earliest wins.
func (r *Registry) Best() (string, error) {
	if len(r.order) == 0 {
		return "", fmt.Errorf("%w: registry is empty", ErrModelNotFound)
	}
	best := r.order[0]
	for _, name := range r.order[1:] {
		if r.entries[name].Accuracy > r.entries[best].Accuracy {
			best = name
		}
	}
	return best, nil
}
