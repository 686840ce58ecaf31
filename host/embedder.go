package host

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
)

// Embedder owns a wazero runtime configured for message passing guests.
// One Embedder can instantiate any number of guest modules; each gets its
// own linear memory and exchange buffer.
type Embedder struct {
	runtime wazero.Runtime
	cfg     Config
	handler OutboundHandler
	logger  *slog.Logger
}

// NewEmbedder creates an Embedder, registers the boundary imports, and
// instantiates WASI so Go- and Rust-built guests can start.
func NewEmbedder(ctx context.Context, opts ...Option) (*Embedder, error) {
	e := &Embedder{
		cfg:    defaultConfig(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := validate.Struct(e.cfg); err != nil {
		return nil, fmt.Errorf("invalid embedder config: %w", err)
	}

	rt := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)
	e.runtime = rt

	if err := e.registerBoundary(ctx); err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("failed to register boundary imports: %w", err)
	}

	return e, nil
}

// Close releases the runtime and every instance created from it.
func (e *Embedder) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// Load instantiates a guest module and verifies it exposes the protocol's
// entry points.
func (e *Embedder) Load(ctx context.Context, wasmBytes []byte) (*Instance, error) {
	mod, err := e.runtime.Instantiate(ctx, wasmBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate guest module: %w", err)
	}
	for _, name := range []string{getBufferExport, acceptExport} {
		if mod.ExportedFunction(name) == nil {
			mod.Close(ctx)
			return nil, &ExportError{Name: name}
		}
	}
	return &Instance{guest: wazeroGuest{mod: mod}, cfg: e.cfg}, nil
}

// registerBoundary builds the import module the guest links against. The
// only import in this protocol version is the outbound notification.
func (e *Embedder) registerBoundary(ctx context.Context) error {
	builder := e.runtime.NewHostModuleBuilder(e.cfg.ImportNamespace)

	builder.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
			e.handleSendOut(ctx, mod, uint32(stack[0]), uint32(stack[1]))
		}), []api.ValueType{api.ValueTypeI32, api.ValueTypeI32}, nil).
		Export(sendOutImport)

	_, err := builder.Instantiate(ctx)
	return err
}

// handleSendOut services the guest's outbound notification. The guest's
// bytes must be copied out before this returns; afterwards the guest is
// free to overwrite the region.
func (e *Embedder) handleSendOut(ctx context.Context, mod api.Module, ptr, length uint32) {
	if length > e.cfg.MaxMessageSize {
		e.logger.ErrorContext(ctx, "mp1: dropping oversized outbound message",
			"len", length, "limit", e.cfg.MaxMessageSize)
		return
	}
	region, ok := mod.Memory().Read(ptr, length)
	if !ok {
		e.logger.ErrorContext(ctx, "mp1: outbound region outside guest memory",
			"ptr", ptr, "len", length)
		return
	}
	if e.handler == nil {
		return
	}
	e.handler(ctx, bytes.Clone(region))
}
