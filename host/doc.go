// Package host is the embedder side of the message passing protocol.
//
// It abstracts the underlying WASM engine (wazero), supplies the
// _3nweb_mp1_send_out_msg import the guest expects in its env namespace,
// and drives the pull sequence for inbound delivery: ask the guest for a
// buffer, write the message bytes into guest memory, then call the guest's
// accept entry point.
package host
