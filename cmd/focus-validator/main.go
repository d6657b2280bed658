// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"go.astrophena.name/hooks/cli"
	"go.astrophena.name/hooks/gate"
)

func main() { cli.Main(gate.FocusValidation()) }
