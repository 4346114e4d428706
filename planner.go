package quadpipe

import (
	"github.com/fogfactory/quadpipe/equation"
	"github.com/samber/lo"
)

// minParallelism is the parallelism needed by a single producer/consumer pair.
const minParallelism = 2

// Bucket defines the half open range [Start, End) of tokens handled by one producer/consumer pair.
type Bucket struct {
	Index int
	Start int
	End   int
}

// Len returns the number of tokens in the bucket.
func (b Bucket) Len() int {
	return b.End - b.Start
}

// Plan defines how a token list is split into buckets.
type Plan struct {
	Total           int
	BucketCount     int
	TokensPerBucket int
}

// NewPlan computes the plan for total tokens. Each unit of parallelism hosts one goroutine, and a bucket needs two of
// them, so the bucket count is half the parallelism (at least 2, odd values round down).
//
// Every bucket but the last one holds TokensPerBucket tokens, a multiple of equation.Arity. The last bucket absorbs the
// remainder. When there are not enough tokens for every bucket, the surplus buckets are empty.
func NewPlan(total, parallelism int) Plan {
	count := max(parallelism, minParallelism) / 2
	perBucket := max(equation.Arity, total/count)
	return Plan{
		Total:           total,
		BucketCount:     count,
		TokensPerBucket: perBucket - perBucket%equation.Arity,
	}
}

// Buckets returns the ranges of the plan. They partition [0, Total) without gap nor overlap.
func (p Plan) Buckets() []Bucket {
	return lo.Times(p.BucketCount, func(i int) Bucket {
		start := min(i*p.TokensPerBucket, p.Total)
		end := min(start+p.TokensPerBucket, p.Total)
		if i == p.BucketCount-1 {
			end = p.Total
		}
		return Bucket{Index: i, Start: start, End: end}
	})
}

// Tasks returns the number of goroutines needed to run the plan.
func (p Plan) Tasks() int {
	return 2 * p.BucketCount
}
