// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package console

import (
	"github.com/usbarmory/go-fbcon/fb"
)

// Init initializes the default console.
func Init(mem []byte, info fb.Info) error {
	return Default.Init(mem, info)
}

// Printf formats according to a format specifier and writes to the default
// console.
func Printf(format string, a ...any) {
	Default.Printf(format, a...)
}

// Print writes its operands to the default console.
func Print(a ...any) {
	Default.Print(a...)
}

// Println writes its operands to the default console, followed by a newline.
func Println(a ...any) {
	Default.Println(a...)
}

// SetPos sets the default console cursor position.
func SetPos(x int, y int) {
	Default.SetPos(x, y)
}

// SetX sets the default console cursor horizontal position.
func SetX(x int) {
	Default.SetX(x)
}

// SetY sets the default console cursor vertical position.
func SetY(y int) {
	Default.SetY(y)
}

// Clear erases the default console screen.
func Clear() {
	Default.Clear()
}
