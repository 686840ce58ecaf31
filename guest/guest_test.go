package guest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMsgOutWithStubBoundary(t *testing.T) {
	// On non-WASM platforms the boundary is a no-op; sending must still be
	// safe to call.
	SendMsgOut(nil)
	SendMsgOut([]byte("ping"))
}

func TestSetMsgProcessorReceivesInbound(t *testing.T) {
	var received [][]byte
	SetMsgProcessor(func(msg []byte) {
		received = append(received, msg)
	})
	defer SetMsgProcessor(nil)

	// Drive the default exchange the way an embedder drives the exports.
	region := defaultExchange.GetBuffer(3)
	copy(region, []byte{0x0A, 0x0B, 0x0C})
	require.NoError(t, defaultExchange.Accept(3))
	require.NoError(t, defaultExchange.Accept(0))

	require.Len(t, received, 2)
	assert.Equal(t, []byte{0x0A, 0x0B, 0x0C}, received[0])
	assert.Empty(t, received[1])
}
