package pool

import "sync"

// BufferPool manages a pool of fixed-size byte buffers.
type BufferPool struct {
	size int       // Length of each buffer.
	pool sync.Pool // Thread-safe pool of buffers.
}

// Creates a new buffer pool with a specified buffer size.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				buf := make([]byte, size)
				return &buf
			},
		},
	}
}

// Retrieves a full-length buffer from the pool.
func (bp *BufferPool) Get() []byte {
	return *(bp.pool.Get().(*[]byte))
}

// Returns a buffer to the pool.
func (bp *BufferPool) Put(buf []byte) {
	// Don't pool buffers whose backing array has shrunk below pool size.
	if cap(buf) < bp.size {
		return
	}

	buf = buf[:bp.size]
	bp.pool.Put(&buf)
}
