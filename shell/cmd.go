// Copyright (c) WithSecure Corporation
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package shell

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"text/tabwriter"
)

// CmdFn represents a command handler, arg holds the command pattern
// submatches.
type CmdFn func(iface *Interface, arg []string) (res string, err error)

// Cmd represents a shell command.
type Cmd struct {
	// Name represents the command name, matched as is without Pattern
	Name string
	// Args represents the number of Pattern submatches
	Args int
	// Pattern represents the command line syntax
	Pattern *regexp.Regexp
	// Syntax represents the arguments help
	Syntax string
	// Help represents the command description
	Help string
	// Fn represents the command handler
	Fn CmdFn
}

var cmds = make(map[string]*Cmd)

func init() {
	Add(Cmd{
		Name: "help",
		Help: "this help",
		Fn:   Help,
	})
}

// Add registers a shell command, replacing any command with the same name.
func Add(cmd Cmd) {
	cmds[cmd.Name] = &cmd
}

// Help returns the registered commands help.
func Help(_ *Interface, _ []string) (string, error) {
	var help bytes.Buffer
	var names []string

	for name := range cmds {
		names = append(names, name)
	}

	sort.Strings(names)

	t := tabwriter.NewWriter(&help, 16, 8, 0, '\t', tabwriter.TabIndent)

	for _, name := range names {
		cmd := cmds[name]
		fmt.Fprintf(t, "%s\t%s\t # %s\n", cmd.Name, cmd.Syntax, cmd.Help)
	}

	t.Flush()

	return help.String(), nil
}
