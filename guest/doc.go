// Package guest binds the message passing protocol to the WASM boundary
// and exposes the two calls guest application code needs: SendMsgOut and
// SetMsgProcessor.
//
// When built for wasip1 the package exports _3nweb_mp1_accept_msg and
// _3nweb_mp1_get_buffer to the embedder and imports
// _3nweb_mp1_send_out_msg from the env namespace. On other platforms the
// boundary is a no-op stub so host-side tooling that links this package
// still compiles.
package guest
