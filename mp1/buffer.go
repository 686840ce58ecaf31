package mp1

// DefaultBufferLimit caps how large the exchange buffer may grow.
// The buffer is sized to the largest message seen so far and never shrinks,
// so without a limit a single huge message would pin that much linear
// memory for the instance's lifetime.
const DefaultBufferLimit = 100 * 1024 * 1024 // 100 MB

// Buffer owns the single exchange buffer region of a guest instance.
//
// Capacity is monotonically non-decreasing: a request that fits the current
// region reuses it unchanged, trading memory headroom for fewer allocations
// on repeated similarly-sized traffic. A larger request drops the old
// region and allocates a fresh one of exactly the requested size. The
// region is created lazily on first use and is never freed.
type Buffer struct {
	region []byte
	limit  int
}

// NewBuffer returns an empty buffer manager. A limit of zero or below
// falls back to DefaultBufferLimit.
func NewBuffer(limit int) *Buffer {
	if limit <= 0 {
		limit = DefaultBufferLimit
	}
	return &Buffer{limit: limit}
}

// EnsureCapacity returns the exchange buffer region, reallocated if its
// current capacity is below n. Requests of zero bytes never allocate; they
// return whatever region already exists, possibly nil.
//
// Panics with *MemoryError if n exceeds the buffer limit. Allocation
// failure has no recovery path in the protocol.
func (b *Buffer) EnsureCapacity(n int) []byte {
	if n <= len(b.region) {
		return b.region
	}
	if n > b.limit {
		panic(&MemoryError{Requested: n, Current: len(b.region), Limit: b.limit})
	}
	b.region = make([]byte, n)
	return b.region
}

// Cap returns the current capacity of the exchange buffer in bytes.
func (b *Buffer) Cap() int {
	return len(b.region)
}

// Allocated reports whether a region has ever been allocated.
func (b *Buffer) Allocated() bool {
	return b.region != nil
}
