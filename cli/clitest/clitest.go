// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package clitest provides a harness for table-driven testing of
// [cli.App] implementations.
package clitest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"go.astrophena.name/hooks/cli"
)

// Case describes a single test case for a [cli.App].
type Case[App cli.App] struct {
	// Args are the command-line arguments passed to the application.
	Args []string
	// Stdin is the application's standard input. If nil, an empty reader is
	// used.
	Stdin io.Reader
	// Env contains environment variables visible to the application.
	Env map[string]string
	// WantErr, if set, requires the returned error to match with
	// [errors.Is].
	WantErr error
	// WantErrType, if set, requires the returned error to match with
	// [errors.As]. It must be a pointer to an error type.
	WantErrType any
	// WantInStdout is a substring that must appear in standard output.
	WantInStdout string
	// WantInStderr is a substring that must appear in standard error.
	WantInStderr string
	// WantNothingPrinted requires both stdout and stderr to be empty.
	WantNothingPrinted bool
	// CheckFunc, if set, runs after the application with the App returned
	// by setup, for additional assertions.
	CheckFunc func(*testing.T, App)
}

// Run runs each case as a subtest. For every case, setup constructs a fresh
// App, then the app is executed via [cli.Run] with an isolated environment.
func Run[App cli.App](t *testing.T, setup func(*testing.T) App, cases map[string]Case[App]) {
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			app := setup(t)

			stdin := tc.Stdin
			if stdin == nil {
				stdin = strings.NewReader("")
			}

			var stdout, stderr bytes.Buffer
			env := &cli.Env{
				Args:   tc.Args,
				Stdin:  stdin,
				Stdout: &stdout,
				Stderr: &stderr,
				Getenv: func(key string) string { return tc.Env[key] },
			}
			ctx := cli.WithEnv(context.Background(), env)

			err := cli.Run(ctx, app)

			switch {
			case tc.WantErr != nil:
				if !errors.Is(err, tc.WantErr) {
					t.Fatalf("want error %v, got %v", tc.WantErr, err)
				}
			case tc.WantErrType != nil:
				target := reflect.New(reflect.TypeOf(tc.WantErrType)).Interface()
				if !errors.As(err, target) {
					t.Fatalf("want error of type %T, got %v", tc.WantErrType, err)
				}
			case err != nil:
				t.Fatalf("cli.Run(): %v", err)
			}

			if tc.WantNothingPrinted {
				if stdout.Len() > 0 {
					t.Errorf("stdout is not empty: %q", stdout.String())
				}
				if stderr.Len() > 0 {
					t.Errorf("stderr is not empty: %q", stderr.String())
				}
			}

			if tc.WantInStdout != "" && !strings.Contains(stdout.String(), tc.WantInStdout) {
				t.Errorf("stdout must contain %q, got: %q", tc.WantInStdout, stdout.String())
			}
			if tc.WantInStderr != "" && !strings.Contains(stderr.String(), tc.WantInStderr) {
				t.Errorf("stderr must contain %q, got: %q", tc.WantInStderr, stderr.String())
			}

			if tc.CheckFunc != nil {
				tc.CheckFunc(t, app)
			}
		})
	}
}
