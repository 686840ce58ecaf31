//go:build wasip1

package guest

import (
	"github.com/3nsoft/wasm-message-passing-3nweb/internal/abi"
)

// The embedder provides this callback in the env namespace of imports.
// During the call it must read exactly length bytes starting at ptr.
//
//go:wasmimport env _3nweb_mp1_send_out_msg
//nolint:revive // snake_case matches the protocol's symbol naming
func _3nweb_mp1_send_out_msg(ptr uint32, length uint32)

// boundary is the wasip1 Hostcalls binding.
type boundary struct{}

func (boundary) SendOut(region []byte) {
	_3nweb_mp1_send_out_msg(abi.Pointer(region), uint32(len(region)))
}

// getBuffer lets the embedder pre-size the exchange buffer and obtain the
// address it should write the next inbound message into.
//
//go:wasmexport _3nweb_mp1_get_buffer
func getBuffer(length uint32) uint32 {
	return abi.Pointer(defaultExchange.GetBuffer(int(length)))
}

// acceptMsg completes inbound delivery of a message the embedder wrote
// into the exchange buffer. A malformed claimed length traps the instance,
// which surfaces to the embedder as a failed accept call; this entry point
// has no error result to report it through.
//
//go:wasmexport _3nweb_mp1_accept_msg
func acceptMsg(length uint32) {
	if err := defaultExchange.Accept(int(length)); err != nil {
		panic(err)
	}
}
