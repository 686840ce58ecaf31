package mp1

// Processor handles inbound messages. It receives an owned copy of the
// message bytes, fully independent of the exchange buffer, and may retain
// it freely.
type Processor func(msg []byte)

// Hostcalls binds the boundary operations the embedder imports into the
// guest. The guest package provides the real WASM wiring; tests supply
// in-process fakes.
type Hostcalls interface {
	// SendOut notifies the embedder that an outbound message is staged in
	// region. The embedder must read all of region before returning, and
	// must not retain it past the call.
	SendOut(region []byte)
}

// Exchange is the guest-instance context of the protocol: it owns the
// exchange buffer and the registered message processor, and performs the
// boundary operations against the bound Hostcalls.
//
// An Exchange is single-threaded by the protocol's execution model. The
// boundary calls are synchronous and non-reentrant, so no locking is done
// here; an embedding that drives one Exchange from several threads must
// serialize Send and Accept externally.
type Exchange struct {
	buf  *Buffer
	proc Processor
	host Hostcalls
}

// ExchangeOption configures an Exchange.
type ExchangeOption func(*Exchange)

// WithBufferLimit caps the exchange buffer capacity in bytes.
func WithBufferLimit(limit int) ExchangeOption {
	return func(e *Exchange) {
		e.buf = NewBuffer(limit)
	}
}

// NewExchange creates an Exchange bound to the given Hostcalls.
func NewExchange(host Hostcalls, opts ...ExchangeOption) *Exchange {
	e := &Exchange{
		buf:  NewBuffer(DefaultBufferLimit),
		host: host,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetProcessor registers the callback invoked with every inbound message.
// The last registration wins. While no processor is registered, inbound
// messages are silently discarded.
func (e *Exchange) SetProcessor(p Processor) {
	e.proc = p
}

// Send hands msg to the embedder. The message bytes are staged in the
// exchange buffer and the embedder is notified of the staged region; when
// the notification returns the embedder has read the bytes and the region
// may be reused.
//
// Empty messages notify the embedder with an empty region without touching
// the buffer manager.
func (e *Exchange) Send(msg []byte) {
	if len(msg) == 0 {
		e.host.SendOut(nil)
		return
	}
	region := e.buf.EnsureCapacity(len(msg))
	copy(region, msg)
	e.host.SendOut(region[:len(msg)])
}

// GetBuffer is the embedder's pull entry point: it returns an exchange
// buffer region of at least n bytes for the embedder to write an inbound
// message into, ahead of the matching Accept call.
func (e *Exchange) GetBuffer(n int) []byte {
	return e.buf.EnsureCapacity(n)
}

// Accept completes inbound delivery of an n-byte message previously
// written into the exchange buffer. Exactly n staged bytes are copied into
// a fresh owned message and handed to the registered processor; without a
// processor the message is discarded. Accept returns only after the
// processor invocation, if any, has completed.
//
// n of zero is valid and delivers an empty message without touching the
// buffer manager. An n larger than the staged capacity is rejected with
// *MalformedInboundError rather than trusted.
func (e *Exchange) Accept(n int) error {
	if n != 0 && (n < 0 || n > e.buf.Cap()) {
		return &MalformedInboundError{Claimed: n, Staged: e.buf.Cap()}
	}
	if e.proc == nil {
		return nil
	}
	msg := make([]byte, n)
	copy(msg, e.buf.region[:n])
	e.proc(msg)
	return nil
}
