package astar

import (
	"errors"
	"log/slog"
	"math"

	"github.com/katalvlaran/mazenav/core"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to the search.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNoPath covers every routine negative outcome: start or goal missing
	// from the graph, or no route between them.
	ErrNoPath = errors.New("astar: no path found")

	// ErrBadMaxCost indicates a negative or NaN MaxCost.
	ErrBadMaxCost = errors.New("astar: MaxCost must be non-negative")

	// ErrBadImpassable indicates a zero, negative or NaN impassable threshold.
	ErrBadImpassable = errors.New("astar: ImpassableCost must be positive")

	// ErrUnknownHeuristic indicates ParseHeuristic got an unsupported name.
	ErrUnknownHeuristic = errors.New("astar: unknown heuristic")
)

// Options configures a Search.
//
// Heuristic      – estimate of remaining cost; nil selects the automatic heuristic.
// Shape          – distance used by the automatic heuristic. Default Manhattan.
// MaxCost        – routes costing more are not explored. Default +Inf.
// ImpassableCost – connections with Cost ≥ this are skipped. Default +Inf.
// Logger         – receives one debug record per search. Default discards.
type Options struct {
	Heuristic      Heuristic
	Shape          Shape
	MaxCost        float64
	ImpassableCost float64
	Logger         *slog.Logger
}

// Option represents a functional option for configuring a Search.
type Option func(*Options)

// WithHeuristic sets the heuristic. Passing nil restores automatic selection.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
		if h == nil {
			o.Shape = nil
		}
	}
}

// WithShape keeps automatic scaling but measures distance with shape.
// It clears any explicit heuristic.
func WithShape(shape Shape) Option {
	return func(o *Options) {
		o.Heuristic = nil
		o.Shape = shape
	}
}

// WithMaxCost caps the cost of routes the search explores.
// Must be non-negative; an invalid value panics with ErrBadMaxCost,
// the same way invalid distance caps are rejected at option construction.
func WithMaxCost(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxCost.Error())
	}
	return func(o *Options) {
		o.MaxCost = max
	}
}

// WithImpassableCost treats connections whose cost is ≥ threshold as walls.
// Must be positive; an invalid value panics with ErrBadImpassable.
func WithImpassableCost(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadImpassable.Error())
	}
	return func(o *Options) {
		o.ImpassableCost = threshold
	}
}

// WithLogger routes the per-search debug record to l. nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with automatic heuristic, no caps and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Heuristic:      nil,
		MaxCost:        math.Inf(1),
		ImpassableCost: math.Inf(1),
		Logger:         slog.New(slog.DiscardHandler),
	}
}

// Result carries a found route and search statistics.
type Result struct {
	Path     []*core.Node // start … goal, both inclusive
	Cost     float64      // sum of connection costs along Path
	Expanded int          // nodes taken off the frontier and expanded
}
