package image

import "sync"

// Pool is a bounded, thread-safe free list of scratch sample buffers.
//
// Get hands out the smallest pooled buffer whose capacity covers the
// request, resliced to the requested length, so one large buffer serves
// every smaller image. The pool keeps at most maxBuffers buffers and never
// retains one with capacity above maxLen; when full, the oldest buffer is
// dropped. Retention therefore stays bounded no matter how many distinct
// image sizes pass through.
//
// Thread safety: All methods are safe for concurrent use.
type Pool[T any] struct {
	mu         sync.Mutex
	free       [][]T // oldest first
	maxBuffers int
	maxLen     int
}

// NewPool creates a pool holding at most maxBuffers buffers of at most
// maxLen elements each. Non-positive limits default to 1 buffer and
// unlimited length respectively.
func NewPool[T any](maxBuffers, maxLen int) *Pool[T] {
	return &Pool[T]{
		maxBuffers: max(1, maxBuffers),
		maxLen:     maxLen,
	}
}

// Get returns a buffer of n elements. Reused buffers are not cleared:
// callers overwrite every element before reading.
func (p *Pool[T]) Get(n int) []T {
	p.mu.Lock()
	best := -1
	for i, buf := range p.free {
		if cap(buf) >= n && (best < 0 || cap(buf) < cap(p.free[best])) {
			best = i
		}
	}
	if best >= 0 {
		buf := p.free[best]
		p.free = append(p.free[:best], p.free[best+1:]...)
		p.mu.Unlock()
		return buf[:n]
	}
	p.mu.Unlock()

	return make([]T, n)
}

// Put returns a buffer to the pool. Empty and oversized buffers are dropped.
func (p *Pool[T]) Put(buf []T) {
	if cap(buf) == 0 || (p.maxLen > 0 && cap(buf) > p.maxLen) {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.free = append(p.free, buf[:cap(buf)])
	if over := len(p.free) - p.maxBuffers; over > 0 {
		clear(p.free[:over])
		p.free = append(p.free[:0], p.free[over:]...)
	}
}

// Len returns the number of pooled buffers.
func (p *Pool[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}

// Retained returns the total capacity, in elements, of the pooled buffers.
func (p *Pool[T]) Retained() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	total := 0
	for _, buf := range p.free {
		total += cap(buf)
	}
	return total
}
