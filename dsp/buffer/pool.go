package buffer

import "sync"

// Scratch is a pooled float64 working buffer. Data has the length asked
// for in Pool.Get and may have spare capacity beyond it.
type Scratch struct {
	Data []float64
}

// Pool provides sync.Pool-based reuse of float64 working buffers for
// kernels that need temporary mix or wet buses.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Scratch{}
			},
		},
	}
}

// Get returns a pooled buffer whose Data is zeroed and of the requested
// length. The backing array grows in place when it is too small.
// Callers must return it via Put when done.
func (p *Pool) Get(length int) *Scratch {
	if length < 0 {
		length = 0
	}

	s := p.pool.Get().(*Scratch)
	if cap(s.Data) < length {
		s.Data = make([]float64, length)
		return s
	}

	s.Data = s.Data[:length]
	clear(s.Data)

	return s
}

// Put returns a buffer to the pool for reuse.
// The caller must not use s or s.Data after calling Put.
func (p *Pool) Put(s *Scratch) {
	if s == nil {
		return
	}

	p.pool.Put(s)
}
