package pqueue

import (
	"errors"
	"math"
)

// ErrPriorityRange indicates a priority below zero or above the configured maximum.
var ErrPriorityRange = errors.New("pqueue: priority out of range")

// Options configures a Queue.
type Options struct {
	// MaxPriority is the highest accepted priority. Must be ≥ 0.
	MaxPriority int
}

// Option represents a functional option for configuring a Queue.
type Option func(*Options)

// WithMaxPriority caps accepted priorities at max.
// Panics with ErrPriorityRange if max is negative.
func WithMaxPriority(max int) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrPriorityRange.Error())
		}
		o.MaxPriority = max
	}
}

// DefaultOptions returns Options with no priority cap.
func DefaultOptions() Options {
	return Options{MaxPriority: math.MaxInt}
}
