package quadpipe

import (
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
)

// releaseTimeout bounds the time Release waits for the pool goroutines to exit.
const releaseTimeout = 5 * time.Second

// Pool defines a fixed size goroutine pool. Tasks are submitted with Go and joined with Wait.
//
// A task may block until another task of the same pool runs (a consumer waits for its producer), so the pool must be
// sized to the number of tasks submitted before Wait.
type Pool struct {
	pool *ants.Pool
	wg   sync.WaitGroup
}

// NewPoolWithOptions builds a pool of size goroutines. Options are given as is to the underlying ants pool.
func NewPoolWithOptions(size int, opts ...ants.Option) (*Pool, error) {
	pool, err := ants.NewPool(size, opts...)
	if err != nil {
		return nil, err
	}
	return &Pool{pool: pool}, nil
}

// NewPool builds a pool of size goroutines.
func NewPool(size int) (*Pool, error) {
	return NewPoolWithOptions(size)
}

// Go runs f in the pool.
func (p *Pool) Go(f func()) {
	p.wg.Add(1)
	err := p.pool.Submit(func() {
		defer p.wg.Done()
		f()
	})
	if err != nil {
		// Only happens with a released pool or a non blocking pool smaller than the task count
		p.wg.Done()
		panic(fmt.Errorf("submit task: %w", err))
	}
}

// Wait blocks until every task submitted with Go returns.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Release releases the pool and waits for its goroutines to exit.
func (p *Pool) Release() error {
	if p == nil || p.pool == nil {
		return nil
	}
	return p.pool.ReleaseTimeout(releaseTimeout)
}
