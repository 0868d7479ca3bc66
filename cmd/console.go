// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/usbarmory/go-fbcon/console"
	"github.com/usbarmory/go-fbcon/shell"
)

// Console represents the framebuffer console driven by shell commands.
var Console = console.Default

func init() {
	shell.Add(shell.Cmd{
		Name:    "print",
		Args:    1,
		Pattern: regexp.MustCompile(`^print (.*)$`),
		Syntax:  "<text>",
		Help:    "print a line on the framebuffer console",
		Fn:      printCmd,
	})

	shell.Add(shell.Cmd{
		Name:    "at",
		Args:    2,
		Pattern: regexp.MustCompile(`^at (\d+) (\d+)$`),
		Syntax:  "<x> <y>",
		Help:    "set cursor position (pixels)",
		Fn:      atCmd,
	})

	shell.Add(shell.Cmd{
		Name:    "cursor",
		Args:    1,
		Pattern: regexp.MustCompile(`^cursor (left|right|up|down)$`),
		Syntax:  "(left|right|up|down)",
		Help:    "move cursor",
		Fn:      cursorCmd,
	})

	shell.Add(shell.Cmd{
		Name: "bs",
		Help: "erase previous character",
		Fn:   backspaceCmd,
	})

	shell.Add(shell.Cmd{
		Name: "clear",
		Help: "clear screen",
		Fn:   clearCmd,
	})

	shell.Add(shell.Cmd{
		Name: "fb",
		Help: "framebuffer information",
		Fn:   fbCmd,
	})
}

func checkConsole() error {
	if !Console.Initialized() {
		return errors.New("framebuffer console unavailable")
	}

	return nil
}

func printCmd(_ *shell.Interface, arg []string) (_ string, err error) {
	if err = checkConsole(); err != nil {
		return
	}

	Console.Println(arg[0])

	return
}

func atCmd(_ *shell.Interface, arg []string) (_ string, err error) {
	if err = checkConsole(); err != nil {
		return
	}

	x, err := strconv.Atoi(arg[0])

	if err != nil {
		return "", fmt.Errorf("invalid x, %v", err)
	}

	y, err := strconv.Atoi(arg[1])

	if err != nil {
		return "", fmt.Errorf("invalid y, %v", err)
	}

	Console.SetPos(x, y)
	x, y = Console.Pos()

	return fmt.Sprintf("cursor at (%d,%d)", x, y), nil
}

func cursorCmd(_ *shell.Interface, arg []string) (_ string, err error) {
	if err = checkConsole(); err != nil {
		return
	}

	switch arg[0] {
	case "left":
		Console.CursorLeft()
	case "right":
		Console.CursorRight()
	case "up":
		Console.CursorUp()
	case "down":
		Console.CursorDown()
	}

	x, y := Console.Pos()

	return fmt.Sprintf("cursor at (%d,%d)", x, y), nil
}

func backspaceCmd(_ *shell.Interface, _ []string) (_ string, err error) {
	if err = checkConsole(); err != nil {
		return
	}

	Console.Backspace()

	return
}

func clearCmd(_ *shell.Interface, _ []string) (_ string, err error) {
	if err = checkConsole(); err != nil {
		return
	}

	Console.Clear()

	return
}

func fbCmd(_ *shell.Interface, _ []string) (string, error) {
	var buf bytes.Buffer

	info, ok := Console.Info()

	if !ok {
		return "", errors.New("framebuffer console unavailable")
	}

	x, y := Console.Pos()

	fmt.Fprintf(&buf, "Resolution .....: %dx%d\n", info.Width, info.Height)
	fmt.Fprintf(&buf, "Stride .........: %d pixels\n", info.Stride)
	fmt.Fprintf(&buf, "Bytes per pixel : %d\n", info.BytesPerPixel)
	fmt.Fprintf(&buf, "Pixel format ...: %s\n", info.Format)
	fmt.Fprintf(&buf, "Memory .........: %d bytes\n", info.Size())
	fmt.Fprintf(&buf, "Cursor .........: (%d,%d)", x, y)

	return buf.String(), nil
}
