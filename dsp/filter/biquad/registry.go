package biquad

import (
	"fmt"
	"strings"
)

// Entry pairs a display name with one topology instance.
type Entry struct {
	Kind   Kind
	Name   string
	Filter Topology
}

// Registry is a fixed, ordered set of topology instances. Iteration order is
// the order of [Kinds] (or of the subset passed to [NewRegistryOf]).
// Entries own their state; two registries never share instances.
type Registry struct {
	entries []Entry
}

// NewRegistry builds one zero-state instance of every kind at sampleRate.
func NewRegistry(sampleRate float64) *Registry {
	r, _ := NewRegistryOf(sampleRate, Kinds()...) // Kinds() is always valid
	return r
}

// NewRegistryOf builds instances for the given kinds. Duplicates are
// dropped and the result keeps declared order regardless of argument order.
func NewRegistryOf(sampleRate float64, kinds ...Kind) (*Registry, error) {
	want := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		if k < 0 || int(k) >= len(kindNames) {
			return nil, fmt.Errorf("%w: %v", ErrUnknownKind, k)
		}
		want[k] = true
	}

	r := &Registry{}
	for _, k := range Kinds() {
		if !want[k] {
			continue
		}
		t, err := New(k, sampleRate)
		if err != nil {
			return nil, err
		}
		r.entries = append(r.entries, Entry{Kind: k, Name: k.String(), Filter: t})
	}
	return r, nil
}

// Select builds a registry from a comma-separated list of names, e.g.
// "svf,df2". An empty list selects every kind.
func Select(sampleRate float64, list string) (*Registry, error) {
	list = strings.TrimSpace(list)
	if list == "" {
		return NewRegistry(sampleRate), nil
	}

	var kinds []Kind
	for _, name := range strings.Split(list, ",") {
		k, err := ParseKind(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return NewRegistryOf(sampleRate, kinds...)
}

// Entries returns the registry entries in order. The slice is a copy; the
// Filter values are the registry's own instances.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Names returns display names in order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}
