package analytic

import "sync"

// Buffer wraps a float32 accumulation slab with reuse-friendly semantics.
// The rasterizer works on raw []float32; Cells() bridges.
type Buffer struct {
	cells []float32
}

// NewBuffer returns a zero-filled Buffer of the given length.
func NewBuffer(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{cells: make([]float32, length)}
}

// Cells returns the underlying slice.
func (b *Buffer) Cells() []float32 {
	return b.cells
}

// Len returns the current number of cells.
func (b *Buffer) Len() int {
	return len(b.cells)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer) Cap() int {
	return cap(b.cells)
}

// Resize sets the length to n, reusing existing capacity when possible.
// New cells beyond the previous length are zeroed.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.cells)
	if n <= cap(b.cells) {
		b.cells = b.cells[:n]
	} else {
		s := make([]float32, n)
		copy(s, b.cells)
		b.cells = s
	}
	// Cells exposed beyond the old length may hold stale deltas from a
	// previous use of the backing array.
	if n > oldLen {
		for i := oldLen; i < n; i++ {
			b.cells[i] = 0
		}
	}
}

// Zero sets all cells to 0.
func (b *Buffer) Zero() {
	for i := range b.cells {
		b.cells[i] = 0
	}
}

// BufferPool provides sync.Pool-based Buffer reuse to cut allocation
// churn when rendering many glyphs in sequence.
type BufferPool struct {
	pool sync.Pool
}

// NewBufferPool returns a BufferPool ready for use.
func NewBufferPool() *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns a Buffer with the requested length. The buffer is zeroed.
// Callers must return it via Put when done.
func (p *BufferPool) Get(length int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Resize(length)
	b.Zero()
	return b
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *BufferPool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
