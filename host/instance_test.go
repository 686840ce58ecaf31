package host

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3nsoft/wasm-message-passing-3nweb/mp1"
)

// exchangeGuest implements guestCalls directly over an mp1.Exchange,
// giving Deliver a real in-process guest to talk to. Addresses are
// stand-ins; Write copies into the region GetBuffer staged.
type exchangeGuest struct {
	ex     *mp1.Exchange
	region []byte
}

func (g *exchangeGuest) GetBuffer(_ context.Context, length uint32) (uint32, error) {
	g.region = g.ex.GetBuffer(int(length))
	return 1, nil
}

func (g *exchangeGuest) Write(_ uint32, data []byte) error {
	copy(g.region, data)
	return nil
}

func (g *exchangeGuest) Accept(_ context.Context, length uint32) error {
	return g.ex.Accept(int(length))
}

// outboundInto returns mp1 hostcalls delivering guest sends to sink.
type outboundInto struct {
	sink *[][]byte
}

func (o outboundInto) SendOut(region []byte) {
	msg := make([]byte, len(region))
	copy(msg, region)
	*o.sink = append(*o.sink, msg)
}

func newTestInstance(ex *mp1.Exchange) *Instance {
	return &Instance{guest: &exchangeGuest{ex: ex}, cfg: defaultConfig()}
}

func TestDeliverRoundTrip(t *testing.T) {
	ex := mp1.NewExchange(outboundInto{sink: new([][]byte)})

	var received [][]byte
	ex.SetProcessor(func(msg []byte) {
		received = append(received, msg)
	})

	inst := newTestInstance(ex)
	ctx := context.Background()

	payloads := [][]byte{
		{0xAA, 0xBB, 0xCC, 0xDD},
		{},
		[]byte("across the boundary"),
	}
	for _, p := range payloads {
		require.NoError(t, inst.Deliver(ctx, p))
	}

	require.Len(t, received, len(payloads))
	for i, p := range payloads {
		assert.Equal(t, p, received[i])
	}
}

func TestDeliverEmptySkipsBufferRequest(t *testing.T) {
	ex := mp1.NewExchange(outboundInto{sink: new([][]byte)})
	calls := 0
	ex.SetProcessor(func(msg []byte) {
		calls++
		assert.Empty(t, msg)
	})

	guest := &exchangeGuest{ex: ex}
	inst := &Instance{guest: guest, cfg: defaultConfig()}

	require.NoError(t, inst.Deliver(context.Background(), nil))
	assert.Equal(t, 1, calls)
	assert.Nil(t, guest.region, "zero-length delivery must not request a buffer")
}

func TestDeliverEnforcesSizeLimit(t *testing.T) {
	inst := newTestInstance(mp1.NewExchange(outboundInto{sink: new([][]byte)}))
	inst.cfg.MaxMessageSize = 4

	err := inst.Deliver(context.Background(), []byte("too big"))
	var sizeErr *SizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, 7, sizeErr.Len)
	assert.Equal(t, uint32(4), sizeErr.Limit)
}

// failingGuest errors on a chosen boundary call.
type failingGuest struct {
	exchangeGuest
	failOn string
	err    error
}

func (g *failingGuest) GetBuffer(ctx context.Context, length uint32) (uint32, error) {
	if g.failOn == getBufferExport {
		return 0, g.err
	}
	return g.exchangeGuest.GetBuffer(ctx, length)
}

func (g *failingGuest) Accept(ctx context.Context, length uint32) error {
	if g.failOn == acceptExport {
		return g.err
	}
	return g.exchangeGuest.Accept(ctx, length)
}

func TestDeliverWrapsBoundaryFailures(t *testing.T) {
	cause := errors.New("guest trapped")

	for _, failOn := range []string{getBufferExport, acceptExport} {
		t.Run(failOn, func(t *testing.T) {
			guest := &failingGuest{
				exchangeGuest: exchangeGuest{ex: mp1.NewExchange(outboundInto{sink: new([][]byte)})},
				failOn:        failOn,
				err:           cause,
			}
			inst := &Instance{guest: guest, cfg: defaultConfig()}

			err := inst.Deliver(context.Background(), []byte{1, 2})
			var boundary *BoundaryError
			require.ErrorAs(t, err, &boundary)
			assert.Equal(t, failOn, boundary.Op)
			assert.ErrorIs(t, err, cause)
		})
	}
}

func TestGuestEchoLoop(t *testing.T) {
	// Full loop: host delivers inbound, the guest's processor echoes every
	// message back out, the host observes it on its outbound handler.
	var outbound [][]byte
	ex := mp1.NewExchange(outboundInto{sink: &outbound})
	ex.SetProcessor(func(msg []byte) {
		ex.Send(msg)
	})

	inst := newTestInstance(ex)
	ctx := context.Background()

	require.NoError(t, inst.Deliver(ctx, []byte{0x01, 0x02, 0x03}))
	require.NoError(t, inst.Deliver(ctx, []byte("echo")))

	require.Len(t, outbound, 2)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, outbound[0])
	assert.Equal(t, []byte("echo"), outbound[1])
}
