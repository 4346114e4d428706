package quadpipe

import (
	"errors"
	"fmt"
	"io"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

var (
	ErrInvalidBuffer      = errors.New("invalid buffer")
	ErrInvalidParallelism = errors.New("invalid parallelism")
	ErrOutput             = errors.New("output failure")
)

// Stats defines the counters of a run.
type Stats struct {
	Buckets    int
	Solved     int
	Malformed  int
	Incomplete int
	Writes     int
}

// Pipeline solves token lists concurrently and writes the results to a writer.
type Pipeline struct {
	w      io.Writer
	config config
}

// New creates a Pipeline writing to w.
func New(w io.Writer, opts ...Option) (*Pipeline, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Pipeline{w: w, config: cfg}, nil
}

// Run splits tokens into buckets, runs a producer and a consumer per bucket and waits for all of them.
//
// Within a bucket, results are written in parse order (unless assist is enabled). Nothing is guaranteed between
// buckets. Malformed groups are reported in the output and never stop the run. The returned error only reports a
// failure of the underlying writer.
func (p *Pipeline) Run(tokens []string) (Stats, error) {
	log := p.config.logger
	plan := NewPlan(len(tokens), p.config.parallelism)
	log.Debug("plan",
		zap.Int("tokens", plan.Total),
		zap.Int("buckets", plan.BucketCount),
		zap.Int("tokens_per_bucket", plan.TokensPerBucket))

	pool, err := NewPoolWithOptions(plan.Tasks(), p.config.poolOptions...)
	if err != nil {
		return Stats{}, fmt.Errorf("create pool: %w", err)
	}
	defer func() {
		if err := pool.Release(); err != nil {
			log.Warn("release pool", zap.Error(err))
		}
	}()

	sink := NewSink(p.w)
	runs := lo.Map(plan.Buckets(), func(b Bucket, _ int) *bucketRun {
		return newBucketRun(b, tokens, log)
	})
	for _, r := range runs {
		pool.Go(func() { r.runProducer(p.newBuffer(sink), p.config.assist) })
		pool.Go(func() { r.runConsumer(p.newBuffer(sink)) })
	}
	pool.Wait()

	stats := Stats{
		Buckets:    len(runs),
		Solved:     lo.SumBy(runs, func(r *bucketRun) int { return r.solved + r.assisted }),
		Malformed:  lo.SumBy(runs, func(r *bucketRun) int { return r.malformed }),
		Incomplete: lo.SumBy(runs, func(r *bucketRun) int { return r.incomplete }),
		Writes:     sink.Writes(),
	}
	log.Debug("run done",
		zap.Int("solved", stats.Solved),
		zap.Int("malformed", stats.Malformed),
		zap.Int("incomplete", stats.Incomplete),
		zap.Int("writes", stats.Writes))

	if err := sink.Err(); err != nil {
		log.Warn("output failure", zap.Error(err))
		return stats, fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return stats, nil
}

func (p *Pipeline) newBuffer(w io.Writer) *LineBuffer {
	return NewLineBuffer(w, p.config.bufferCapacity, p.config.bufferMargin)
}
