// SPDX-License-Identifier: MIT

package labeling

import "math"

// Connectivity selects which neighbours join a component.
type Connectivity int

const (
	// ConnFace connects samples that differ by one along exactly one axis.
	ConnFace Connectivity = iota
	// ConnFull connects samples that differ by at most one along every axis.
	ConnFull
)

func (c Connectivity) String() string {
	switch c {
	case ConnFace:
		return "face"
	case ConnFull:
		return "full"
	default:
		return "unknown"
	}
}

const (
	// DefaultConnectivity is face connectivity.
	DefaultConnectivity = ConnFace
	// DefaultForeground is the cutoff a sample must exceed to be foreground.
	DefaultForeground = 0.0
)

// Options configures Components.
type Options struct {
	Connectivity Connectivity
	Foreground   float64
}

// Option mutates Options.
type Option func(*Options)

// WithConnectivity sets the neighbourhood. Panics on an unknown value.
func WithConnectivity(c Connectivity) Option {
	if c != ConnFace && c != ConnFull {
		panic("labeling: WithConnectivity: unknown connectivity")
	}

	return func(o *Options) { o.Connectivity = c }
}

// WithForeground sets the foreground cutoff. Panics on NaN or ±Inf.
func WithForeground(cutoff float64) Option {
	if math.IsNaN(cutoff) || math.IsInf(cutoff, 0) {
		panic("labeling: WithForeground: cutoff must be finite")
	}

	return func(o *Options) { o.Foreground = cutoff }
}

func gatherOptions(opts ...Option) Options {
	o := Options{Connectivity: DefaultConnectivity, Foreground: DefaultForeground}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
