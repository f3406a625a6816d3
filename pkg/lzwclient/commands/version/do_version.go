package version

import (
	"fmt"
	"io"
	"runtime/debug"
)

// DoVersion prints the version of the module from which the binary
// was built, as recorded by the Go toolchain.
func DoVersion(w io.Writer) {
	version := "(devel)"
	if buildInfo, ok := debug.ReadBuildInfo(); ok && buildInfo.Main.Version != "" {
		version = buildInfo.Main.Version
	}
	fmt.Fprintf(w, "lzw %s\n", version)
}
