package marquee

import (
	"github.com/Pvlcrp/marquee/host"
	"github.com/Pvlcrp/marquee/internal/ffi"
)

// Native returns host capabilities backed by the native engine bindings,
// measuring the engine surface with the given id. The engine library is
// loaded on first use; set MARQUEE_LIB_PATH to override its location.
func Native(surfaceID uint32) (host.Capabilities, error) {
	h, err := ffi.Connect()
	if err != nil {
		return host.Capabilities{}, err
	}
	return host.Capabilities{
		Scheduler: h,
		Document:  h,
		Window:    h,
		Surface:   h.Surface(surfaceID),
	}, nil
}

// EngineVersion returns the native engine's version string, or "" when the
// engine library is unavailable.
func EngineVersion() string {
	return ffi.EngineVersion()
}
