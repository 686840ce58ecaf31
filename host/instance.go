package host

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero/api"
)

// Symbol names of 3nweb's message passing api, version 1.
const (
	sendOutImport   = "_3nweb_mp1_send_out_msg"
	acceptExport    = "_3nweb_mp1_accept_msg"
	getBufferExport = "_3nweb_mp1_get_buffer"
)

// guestCalls is the seam between Deliver's protocol sequence and the
// engine-backed guest underneath it. Tests drive the sequence against an
// in-process guest; production uses the wazero binding below.
type guestCalls interface {
	GetBuffer(ctx context.Context, length uint32) (uint32, error)
	Write(ptr uint32, data []byte) error
	Accept(ctx context.Context, length uint32) error
}

// Instance is one instantiated guest module.
type Instance struct {
	guest guestCalls
	cfg   Config
}

// Deliver hands msg to the guest. It asks the guest for an exchange
// buffer of the message's size, writes the bytes into it, and calls the
// guest's accept entry point; by the time Deliver returns, the guest has
// handed the message to its registered processor. Empty messages skip the
// buffer request and go straight to accept.
//
// Deliver is synchronous and must not be called concurrently for the same
// instance: the exchange buffer holds one message at a time.
func (i *Instance) Deliver(ctx context.Context, msg []byte) error {
	if len(msg) > int(i.cfg.MaxMessageSize) {
		return &SizeError{Len: len(msg), Limit: i.cfg.MaxMessageSize}
	}

	length := uint32(len(msg))
	if length > 0 {
		ptr, err := i.guest.GetBuffer(ctx, length)
		if err != nil {
			return &BoundaryError{Op: getBufferExport, Err: err}
		}
		if ptr == 0 {
			return &MemoryAccessError{Ptr: 0, Len: length}
		}
		if err := i.guest.Write(ptr, msg); err != nil {
			return err
		}
	}
	if err := i.guest.Accept(ctx, length); err != nil {
		return &BoundaryError{Op: acceptExport, Err: err}
	}
	return nil
}

// wazeroGuest binds guestCalls to a wazero module.
type wazeroGuest struct {
	mod api.Module
}

func (g wazeroGuest) GetBuffer(ctx context.Context, length uint32) (uint32, error) {
	fn := g.mod.ExportedFunction(getBufferExport)
	if fn == nil {
		return 0, &ExportError{Name: getBufferExport}
	}
	results, err := fn.Call(ctx, uint64(length))
	if err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, fmt.Errorf("%s returned no results", getBufferExport)
	}
	return uint32(results[0]), nil
}

func (g wazeroGuest) Write(ptr uint32, data []byte) error {
	if !g.mod.Memory().Write(ptr, data) {
		return &MemoryAccessError{Ptr: ptr, Len: uint32(len(data))}
	}
	return nil
}

func (g wazeroGuest) Accept(ctx context.Context, length uint32) error {
	fn := g.mod.ExportedFunction(acceptExport)
	if fn == nil {
		return &ExportError{Name: acceptExport}
	}
	_, err := fn.Call(ctx, uint64(length))
	return err
}

// Close releases the guest module.
func (i *Instance) Close(ctx context.Context) error {
	if g, ok := i.guest.(wazeroGuest); ok {
		return g.mod.Close(ctx)
	}
	return nil
}
