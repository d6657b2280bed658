// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Focus-validator is a pre-commit workflow gate that validates that code
changes maintain focus on the intended task.

It consumes no arguments, environment variables or files. It prints a single
verdict line to standard output and exits with code 0 if the gate passed, or
1 on an internal error. The invoking workflow tool should treat a zero exit
code as gate-passed and any other as gate-failed.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/hooks/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
