// Package mp1 implements the guest-side core of 3nweb's message passing
// api, version 1.
//
// The protocol moves variable-length binary messages across the guest/host
// memory boundary through a single reusable exchange buffer. Outbound, the
// guest stages message bytes in the buffer and notifies the embedder with
// the staged region. Inbound, the embedder asks the guest for a buffer of
// the message's size, writes the bytes into it, and then tells the guest to
// accept them, at which point the registered Processor receives an owned
// copy of the message.
//
// Everything here is plain Go with no knowledge of WASM: the boundary
// binding lives in the guest package, and the embedder side in the host
// package. State is carried by an explicit Exchange instance so that
// independent instances can coexist in tests.
package mp1
