package quadpipe

import (
	"github.com/fogfactory/quadpipe/equation"
	"go.uber.org/zap"
)

// BucketRun exposes the runtime of a bucket
type BucketRun = bucketRun

// NewBucketRun creates the runtime of a bucket over tokens
func NewBucketRun(b Bucket, tokens []string) *BucketRun {
	return newBucketRun(b, tokens, zap.NewNop())
}

// Produce runs the producer task
func (r *bucketRun) Produce(out *LineBuffer, assist bool) {
	r.runProducer(out, assist)
}

// Consume runs the consumer task
func (r *bucketRun) Consume(out *LineBuffer) {
	r.runConsumer(out)
}

// Queue returns the bucket queue
func (r *bucketRun) Queue() *HandoffQueue[equation.Triple] {
	return r.queue
}

// State returns the bucket state
func (r *bucketRun) State() State {
	return r.currentState()
}

// Counters returns parsed, malformed, incomplete, solved and assisted counters
func (r *bucketRun) Counters() []int {
	return []int{r.parsed, r.malformed, r.incomplete, r.solved, r.assisted}
}

// Cap returns the pool size
func (p *Pool) Cap() int {
	return p.pool.Cap()
}
