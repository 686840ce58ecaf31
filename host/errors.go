package host

import "fmt"

// ExportError reports a guest module that lacks one of the protocol's
// required exports.
type ExportError struct {
	Name string
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("guest module does not export %q", e.Name)
}

// MemoryAccessError reports a guest memory access outside the module's
// linear memory, or a null region where one was required.
type MemoryAccessError struct {
	Ptr uint32
	Len uint32
}

func (e *MemoryAccessError) Error() string {
	return fmt.Sprintf("guest memory access failed at ptr=%#x len=%d", e.Ptr, e.Len)
}

// SizeError reports a message larger than the embedder's configured limit.
type SizeError struct {
	Len   int
	Limit uint32
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("message of %d bytes exceeds limit of %d bytes", e.Len, e.Limit)
}

// BoundaryError wraps a failed boundary call into the guest.
type BoundaryError struct {
	Op  string // the guest export that failed
	Err error
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("boundary call %s failed: %v", e.Op, e.Err)
}

func (e *BoundaryError) Unwrap() error {
	return e.Err
}
