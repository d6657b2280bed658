// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Hooks runs workflow gates for a given checkpoint.

Usage:

	hooks <stage>

where stage is "pre-commit" or "post-test". All gates registered for the
stage run in sequence; the first failing gate stops the run and the command
exits with a nonzero status. Gates are independent of each other, so the
order carries no meaning.

When run from the root of a Git repository outside of CI (the CI
environment variable is not "true"), hooks installs a .git/hooks/pre-commit
script on its first run. This script simply calls 'hooks pre-commit' again,
ensuring that the pre-commit gates run on every subsequent commit.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/hooks/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
