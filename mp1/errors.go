package mp1

import "fmt"

// MemoryError reports an exchange buffer allocation that would exceed the
// instance's buffer limit. The protocol has no way to signal allocation
// failure to the embedder, so the buffer manager panics with this error
// rather than continuing with an invalid region.
type MemoryError struct {
	Requested int // Requested region size
	Current   int // Current buffer capacity
	Limit     int // Maximum allowed capacity
}

func (e *MemoryError) Error() string {
	return fmt.Sprintf("mp1: exchange buffer allocation failed: requested %d bytes, current %d bytes, limit %d bytes",
		e.Requested, e.Current, e.Limit)
}

// MalformedInboundError reports an inbound message whose claimed length
// exceeds the capacity the guest actually staged for it. The guest refuses
// to slice past the exchange buffer instead of trusting the embedder's
// stated length.
type MalformedInboundError struct {
	Claimed int // Length claimed by the embedder
	Staged  int // Capacity actually prepared for the message
}

func (e *MalformedInboundError) Error() string {
	return fmt.Sprintf("mp1: malformed inbound message: claimed length %d exceeds staged capacity %d",
		e.Claimed, e.Staged)
}
