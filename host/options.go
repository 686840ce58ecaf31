package host

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

// DefaultMaxMessageSize limits messages in both directions (1 MB).
// It keeps a misbehaving guest from making the embedder read an absurd
// (ptr, len) claim, and symmetrically bounds what Deliver will stage.
const DefaultMaxMessageSize = 1 * 1024 * 1024

// DefaultImportNamespace is the import namespace the guest expects the
// boundary functions in.
const DefaultImportNamespace = "env"

// OutboundHandler receives every message the guest sends out. The msg
// slice is an owned copy and may be retained.
type OutboundHandler func(ctx context.Context, msg []byte)

// Config holds the embedder settings. It is assembled through options and
// validated when the Embedder is created.
type Config struct {
	// ImportNamespace is the module name the boundary imports are
	// registered under.
	ImportNamespace string `json:"import_namespace" validate:"required"`

	// MaxMessageSize bounds message length in both directions, in bytes.
	MaxMessageSize uint32 `json:"max_message_size" validate:"gt=0"`
}

// validate is a package-level singleton; constructing a validator per call
// is expensive.
var validate = validator.New()

func defaultConfig() Config {
	return Config{
		ImportNamespace: DefaultImportNamespace,
		MaxMessageSize:  DefaultMaxMessageSize,
	}
}

// Option configures an Embedder.
type Option func(*Embedder)

// WithOutboundHandler sets the handler for guest-to-host messages.
// Without one, outbound messages are dropped.
func WithOutboundHandler(h OutboundHandler) Option {
	return func(e *Embedder) {
		e.handler = h
	}
}

// WithMaxMessageSize bounds message length in both directions.
func WithMaxMessageSize(n uint32) Option {
	return func(e *Embedder) {
		e.cfg.MaxMessageSize = n
	}
}

// WithImportNamespace overrides the import namespace the boundary
// functions are registered under (default "env").
func WithImportNamespace(name string) Option {
	return func(e *Embedder) {
		e.cfg.ImportNamespace = name
	}
}

// WithLogger sets the structured logger used for boundary faults.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Embedder) {
		e.logger = logger
	}
}
