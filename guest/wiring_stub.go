//go:build !wasip1

package guest

// boundary is a no-op Hostcalls binding for non-WASM builds. Outbound
// notifications go nowhere; real delivery needs the wasip1 wiring.
type boundary struct{}

func (boundary) SendOut([]byte) {}
