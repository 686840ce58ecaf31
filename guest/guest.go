package guest

import (
	"github.com/3nsoft/wasm-message-passing-3nweb/mp1"
)

// defaultExchange carries the process-wide protocol state behind the
// exported entry points. Guest execution is single-threaded while a
// boundary call is outstanding, so a plain package variable is enough.
var defaultExchange = mp1.NewExchange(boundary{})

// SendMsgOut sends the given binary message to the embedder. The call
// returns once the embedder has read the message; msg may be reused
// afterwards.
func SendMsgOut(msg []byte) {
	defaultExchange.Send(msg)
}

// SetMsgProcessor registers the function that will be called with every
// binary message arriving from the embedder. Messages are handed to the
// processor as owned byte slices, completely separated from the workings
// of the exchange buffer. The last registration wins; until one is made,
// inbound messages are silently dropped.
func SetMsgProcessor(processor mp1.Processor) {
	defaultExchange.SetProcessor(processor)
}
