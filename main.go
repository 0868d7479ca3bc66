// Copyright (c) WithSecure Corporation
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && amd64

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/usbarmory/go-fbcon/cmd"
	"github.com/usbarmory/go-fbcon/console"
	"github.com/usbarmory/go-fbcon/shell"
	"github.com/usbarmory/go-fbcon/x64"
)

func init() {
	log.SetFlags(0)

	cmd.Banner = fmt.Sprintf("%s/%s (%s) • framebuffer console",
		runtime.GOOS, runtime.GOARCH, runtime.Version())

	cmd.Halt = x64.Halt
}

func initConsole() (err error) {
	mem, info, err := x64.Framebuffer()

	if err != nil {
		return
	}

	if err = console.Init(mem, info); err != nil {
		return
	}

	log.SetOutput(io.MultiWriter(os.Stdout, console.Default))

	return
}

func main() {
	if err := initConsole(); err != nil {
		log.Printf("framebuffer console unavailable, %v", err)
	} else {
		info, _ := console.Default.Info()
		log.Printf("framebuffer console %dx%d %s", info.Width, info.Height, info.Format)
	}

	iface := &shell.Interface{
		Banner:     cmd.Banner,
		ReadWriter: x64.UART0,
		VT100:      true,
	}

	iface.Start()

	x64.Halt()
}
