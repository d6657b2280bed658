// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version provides information about the running binary.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"

	"go.astrophena.name/hooks/syncx"
)

// Info describes the running binary.
type Info struct {
	// Name is the base name of the binary.
	Name string
	// Version is the module version, or "devel" for uncommitted builds.
	Version string
	// Commit is the VCS revision the binary was built from, if known.
	Commit string
	// Go is the version of the Go toolchain that built the binary.
	Go string
}

// String implements [fmt.Stringer].
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", i.Name, i.Version)
	if i.Commit != "" {
		fmt.Fprintf(&sb, " (%s)", i.Commit)
	}
	fmt.Fprintf(&sb, "\nbuilt with %s\n", i.Go)
	return sb.String()
}

var (
	cmdName syncx.Lazy[string]
	info    syncx.Lazy[Info]
)

// CmdName returns the base name of the running binary.
func CmdName() string {
	return cmdName.Get(func() string {
		exe, err := os.Executable()
		if err != nil {
			return "unknown"
		}
		return strings.TrimSuffix(filepath.Base(exe), ".exe")
	})
}

// Version returns information about the running binary.
func Version() Info {
	return info.Get(func() Info {
		i := Info{
			Name:    CmdName(),
			Version: "devel",
			Go:      runtime.Version(),
		}
		bi, ok := debug.ReadBuildInfo()
		if !ok {
			return i
		}
		if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			i.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 8 {
				i.Commit = s.Value[:8]
			}
		}
		return i
	})
}
