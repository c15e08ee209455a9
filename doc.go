// Package appkit provides the application-framework core for the GoGPU
// ecosystem: an application lifecycle state machine plus the container,
// resource-descriptor, stream, message and input packages that engine
// code builds on.
//
// # Quick Start
//
//	import "github.com/gogpu/appkit"
//
//	type demo struct{}
//
//	func (demo) Init() appkit.State    { return appkit.StateRunning }
//	func (demo) Frame() appkit.State   { return appkit.StateCleanup }
//	func (demo) Cleanup() appkit.State { return appkit.StateDestroy }
//
//	func main() {
//	    appkit.Run(demo{})
//	}
//
// # Packages
//
//   - container: sorted associative containers backing resource tables
//   - gfx: texture setup descriptors and the resource registry
//   - stream: typed binary stream readers/writers and content types
//   - msg: message base types, codec and dispatcher
//   - input: keyboard/mouse state tracking and event dispatch
//
// appkit stops at descriptor types and device-provider interfaces: it
// does not submit GPU commands, rasterize, or open windows. Pair it
// with gogpu/gogpu for windowing and gogpu/gg for 2D rendering.
package appkit

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"
)
