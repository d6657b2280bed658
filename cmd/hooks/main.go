// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.astrophena.name/hooks/cli"
	"go.astrophena.name/hooks/gate"

	"golang.org/x/term"
)

const hookShellScript = `#!/bin/sh
hooks pre-commit
`

func main() { cli.Main(cli.AppFunc(realMain)) }

func realMain(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if len(env.Args) != 1 {
		return fmt.Errorf("%w: usage: hooks <stage>", cli.ErrInvalidArgs)
	}
	stage := gate.Stage(env.Args[0])
	switch stage {
	case gate.StagePreCommit, gate.StagePostTest:
	default:
		return fmt.Errorf("%w: unknown stage %q", cli.ErrInvalidArgs, env.Args[0])
	}

	if env.Getenv("CI") != "true" {
		if err := installHook(); err != nil {
			return err
		}
	}

	gates := gate.ForStage(stage)
	for i, g := range gates {
		env.Logf("%s", progressMessage(i+1, len(gates), g.Name, terminalWidth(env.Stderr)))
		if err := g.Run(ctx); err != nil {
			return err
		}
	}
	return nil
}

// installHook writes the pre-commit hook script if the current directory is
// the root of a Git repository and no hook is installed yet.
func installHook() error {
	if _, err := os.Stat(filepath.Join(".git", "hooks")); err != nil {
		return nil
	}
	hookPath := filepath.Join(".git", "hooks", "pre-commit")
	if _, err := os.Stat(hookPath); errors.Is(err, fs.ErrNotExist) {
		return os.WriteFile(hookPath, []byte(hookShellScript), 0o755)
	}
	return nil
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !cli.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

const ellipsis = "..."

// progressMessage formats the progress line for a gate, shortening it to
// terminalWidth when the full message wouldn't fit. A width of zero or less
// means the width is unknown and the message is not shortened.
func progressMessage(current, total int, name string, terminalWidth int) string {
	prefix := fmt.Sprintf("[%d/%d] Running gate ", current, total)
	msg := prefix + name
	if terminalWidth <= 0 || len(msg) <= terminalWidth {
		return msg
	}
	if terminalWidth <= len(prefix) {
		return prefix
	}
	if terminalWidth-len(prefix) <= len(ellipsis) {
		return msg[:terminalWidth]
	}
	return msg[:terminalWidth-len(ellipsis)] + ellipsis
}
