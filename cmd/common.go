// Copyright (c) WithSecure Corporation
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package cmd implements the serial shell commands of the framebuffer
// console.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/hako/durafmt"

	"github.com/usbarmory/go-fbcon/shell"
)

// Banner represents the welcome message
var Banner string

// Halt represents the board function stopping all execution, it never returns.
var Halt func()

var start = time.Now()

func init() {
	shell.Add(shell.Cmd{
		Name: "build",
		Help: "build information",
		Fn:   buildInfoCmd,
	})

	shell.Add(shell.Cmd{
		Name: "halt",
		Help: "halt the machine",
		Fn:   haltCmd,
	})

	shell.Add(shell.Cmd{
		Name: "stack",
		Help: "goroutine stack trace (current)",
		Fn:   stackCmd,
	})

	shell.Add(shell.Cmd{
		Name: "uptime",
		Help: "show how long the system has been running",
		Fn:   uptimeCmd,
	})
}

func buildInfoCmd(_ *shell.Interface, _ []string) (string, error) {
	if bi, ok := debug.ReadBuildInfo(); ok {
		return bi.String(), nil
	}

	return "", errors.New("build information unavailable")
}

func haltCmd(iface *shell.Interface, _ []string) (string, error) {
	if Halt == nil {
		return "", errors.New("halt unavailable")
	}

	if iface != nil && iface.ReadWriter != nil {
		fmt.Fprintf(iface.ReadWriter, "Goodbye from %s/%s\n", runtime.GOOS, runtime.GOARCH)
	}

	Halt()

	return "halted", io.EOF
}

func stackCmd(_ *shell.Interface, _ []string) (string, error) {
	return string(debug.Stack()), nil
}

func uptimeCmd(_ *shell.Interface, _ []string) (string, error) {
	return durafmt.Parse(time.Since(start)).String(), nil
}
