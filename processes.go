package quadpipe

import (
	"sync/atomic"

	"github.com/fogfactory/quadpipe/equation"
	"go.uber.org/zap"
)

// State defines the lifecycle of a bucket: Created -> Parsing -> Draining -> Done.
type State int32

const (
	StateCreated State = iota
	StateParsing
	StateDraining
	StateDone
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateParsing:
		return "parsing"
	case StateDraining:
		return "draining"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// bucketRun holds the runtime of one bucket. Producer counters are written by the producer only, consumer counters by
// the consumer only, and both are read once the pool is joined.
type bucketRun struct {
	Bucket
	tokens []string
	queue  *HandoffQueue[equation.Triple]
	state  atomic.Int32
	logger *zap.Logger

	// drainers counts the tasks still draining the queue. The last one to finish moves the bucket to Done.
	drainers atomic.Int32

	// producer
	parsed     int
	malformed  int
	incomplete int
	assisted   int

	// consumer
	solved int
}

func newBucketRun(b Bucket, tokens []string, logger *zap.Logger) *bucketRun {
	r := &bucketRun{
		Bucket: b,
		tokens: tokens,
		queue:  NewHandoffQueue[equation.Triple](),
		logger: logger.With(zap.Int("bucket", b.Index)),
	}
	r.drainers.Store(1)
	return r
}

// produce parses the bucket tokens by groups of equation.Arity, enqueues valid triples and reports invalid groups. It
// stops at the first incomplete group. The producer buffer is flushed before the queue is closed.
func (r *bucketRun) produce(out *LineBuffer) {
	r.transition(StateParsing)
	for i := r.Start; i < r.End; i += equation.Arity {
		if r.End-i < equation.Arity {
			rest := r.tokens[i:r.End]
			out.Append(func(dst []byte) []byte { return equation.AppendIncomplete(dst, rest...) })
			r.incomplete++
			break
		}
		group := r.tokens[i : i+equation.Arity]
		triple, err := equation.ParseTriple(group[0], group[1], group[2])
		if err != nil {
			r.logger.Debug("malformed group", zap.Int("position", i), zap.Error(err))
			out.Append(func(dst []byte) []byte { return equation.AppendMalformed(dst, group...) })
			r.malformed++
			continue
		}
		r.queue.Enqueue(triple)
		r.parsed++
	}
	r.logger.Debug("parsing done",
		zap.Int("parsed", r.parsed),
		zap.Int("malformed", r.malformed),
		zap.Int("incomplete", r.incomplete))
	out.Flush()
	r.transition(StateDraining)
	r.queue.Close()
}

// consume drains the queue and appends a result line for each triple. It returns the number of solved triples.
func (r *bucketRun) consume(out *LineBuffer) int {
	solved := 0
	for {
		triple, ok := r.queue.Dequeue()
		if !ok {
			break
		}
		out.Append(func(dst []byte) []byte { return equation.AppendResult(dst, triple) })
		solved++
	}
	out.Flush()
	return solved
}

// runProducer is the producer task. With assist, the producer helps draining its own queue once parsing is over.
func (r *bucketRun) runProducer(out *LineBuffer, assist bool) {
	if assist {
		// Registered before the queue is closed, so the consumer cannot be the last drainer too early
		r.drainers.Add(1)
	}
	r.produce(out)
	if assist {
		r.assisted = r.consume(out)
		r.drained()
	}
}

// runConsumer is the consumer task.
func (r *bucketRun) runConsumer(out *LineBuffer) {
	r.solved = r.consume(out)
	r.drained()
}

func (r *bucketRun) drained() {
	if r.drainers.Add(-1) == 0 {
		r.transition(StateDone)
	}
}

func (r *bucketRun) transition(s State) {
	r.state.Store(int32(s))
	r.logger.Debug("bucket state", zap.Stringer("state", s), zap.Int("start", r.Start), zap.Int("end", r.End))
}

func (r *bucketRun) currentState() State {
	return State(r.state.Load())
}
