// Package ffi provides Go bindings to the native marquee host engine via
// purego. The engine owns the window, the compositor and the input loop;
// this package exposes the handful of capabilities the marquee needs from
// it: frame scheduling, document visibility, viewport metrics and element
// measurement. Using purego instead of CGo keeps cross-compilation and
// mobile builds working.
package ffi

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// ============================================================================
// Library Loading
// ============================================================================

var (
	libHandle uintptr
	libOnce   sync.Once
	libErr    error
)

// Library function pointers (populated by initLibrary)
var (
	// Frame scheduling
	fnRequestFrame func(callback uintptr) uint64
	fnCancelFrame  func(handle uint64)

	// Document visibility
	fnDocumentHidden func() int32

	// Viewport metrics
	fnViewportSize func(widthOut uintptr, heightOut uintptr) int32

	// Element measurement
	fnSurfaceBounds func(surfaceID uint32, out uintptr) int32
	fnItemBounds    func(surfaceID uint32, index uint32, out uintptr) int32

	// Event delivery (scroll / resize / visibility)
	fnSetEventCallback func(callback uintptr)

	// Engine metadata
	fnEngineVersion func() uintptr
)

// RectC matches the C struct layout for bounding boxes from the engine.
type RectC struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// getLibraryPath returns the path to the engine dynamic library.
func getLibraryPath() string {
	// Check environment variable first
	if path := os.Getenv("MARQUEE_LIB_PATH"); path != "" {
		return path
	}

	var libName string
	switch runtime.GOOS {
	case "darwin", "ios":
		libName = "libmarquee_engine.dylib"
	case "windows":
		libName = "marquee_engine.dll"
	default:
		libName = "libmarquee_engine.so"
	}

	// Try next to the executable, then the working directory
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), libName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return libName
}

// initLibrary loads the engine library and binds the function pointers.
func initLibrary() error {
	libOnce.Do(func() {
		path := getLibraryPath()
		handle, err := openLibrary(path)
		if err != nil {
			libErr = fmt.Errorf("failed to load engine library %s: %w", path, err)
			return
		}
		libHandle = handle

		purego.RegisterLibFunc(&fnRequestFrame, libHandle, "marquee_request_frame")
		purego.RegisterLibFunc(&fnCancelFrame, libHandle, "marquee_cancel_frame")
		purego.RegisterLibFunc(&fnDocumentHidden, libHandle, "marquee_document_hidden")
		purego.RegisterLibFunc(&fnViewportSize, libHandle, "marquee_viewport_size")
		purego.RegisterLibFunc(&fnSurfaceBounds, libHandle, "marquee_surface_bounds")
		purego.RegisterLibFunc(&fnItemBounds, libHandle, "marquee_item_bounds")
		purego.RegisterLibFunc(&fnSetEventCallback, libHandle, "marquee_set_event_callback")
		purego.RegisterLibFunc(&fnEngineVersion, libHandle, "marquee_engine_version")
	})
	return libErr
}

// EngineVersion returns the engine's version string, or "" when unavailable.
func EngineVersion() string {
	if initLibrary() != nil || fnEngineVersion == nil {
		return ""
	}
	ptr := fnEngineVersion()
	if ptr == 0 {
		return ""
	}
	return goString(ptr)
}

// goString converts a NUL-terminated C string to a Go string.
func goString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	var length int
	for {
		b := *(*byte)(unsafe.Pointer(ptr + uintptr(length)))
		if b == 0 {
			break
		}
		length++
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), length))
}

// ============================================================================
// Events
// ============================================================================

// EventType represents the type of event from the engine.
type EventType uint8

const (
	EventScrolled          EventType = 0
	EventResized           EventType = 1
	EventVisibilityChanged EventType = 2
)

// Event represents an event from the engine. Data1/Data2 carry the new
// viewport size for EventResized and are zero otherwise.
type Event struct {
	Type  EventType
	Data1 float64
	Data2 float64
}
