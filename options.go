package quadpipe

import (
	"fmt"
	"runtime"

	"github.com/fogfactory/quadpipe/equation"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

// Option configures a Pipeline.
type Option func(*config)

type config struct {
	parallelism    int
	bufferCapacity int
	bufferMargin   int
	assist         bool
	logger         *zap.Logger
	poolOptions    []ants.Option
}

func defaultConfig() config {
	return config{
		parallelism:    runtime.NumCPU(),
		bufferCapacity: DefaultBufferCapacity,
		bufferMargin:   equation.MaxLineLength,
		logger:         zap.NewNop(),
	}
}

func (c config) validate() error {
	if c.parallelism < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidParallelism, c.parallelism)
	}
	if c.bufferMargin < equation.MaxLineLength {
		return fmt.Errorf("%w: margin %d cannot hold a %d bytes line", ErrInvalidBuffer, c.bufferMargin, equation.MaxLineLength)
	}
	if c.bufferCapacity <= c.bufferMargin {
		return fmt.Errorf("%w: capacity %d must exceed margin %d", ErrInvalidBuffer, c.bufferCapacity, c.bufferMargin)
	}
	return nil
}

// WithParallelism sets the available parallelism used to plan buckets. 0 means runtime.NumCPU().
func WithParallelism(n int) Option {
	return func(c *config) {
		if n == 0 {
			n = runtime.NumCPU()
		}
		c.parallelism = n
	}
}

// WithBuffer sets the capacity of task buffers and the margin left before a flush. The margin must hold the longest
// line (equation.MaxLineLength).
func WithBuffer(capacity, margin int) Option {
	return func(c *config) {
		c.bufferCapacity = capacity
		c.bufferMargin = margin
	}
}

// WithAssist makes producers drain their own queue once parsing is done. It adds throughput on unbalanced buckets but
// results of a bucket are no longer written in parse order.
func WithAssist(assist bool) Option {
	return func(c *config) {
		c.assist = assist
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPoolOptions adds options to the underlying ants pools.
func WithPoolOptions(opts ...ants.Option) Option {
	return func(c *config) {
		c.poolOptions = append(c.poolOptions, opts...)
	}
}
