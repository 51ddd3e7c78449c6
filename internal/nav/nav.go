// Copyright (c) 2025 Edu Commerce
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package nav defines the navigation surface: the logical destinations a
// failed authorization redirects to, and the navigator that carries out
// redirects. The dispatcher and the route guard emit decisions; only the
// navigator touches the user-facing surface.
package nav

import (
	"fmt"
	"io"
	"os"
)

// Destination is a logical navigation target.
type Destination string

const (
	// Login is the unauthenticated entry point.
	Login Destination = "/login"
	// Dashboard is the authenticated landing view.
	Dashboard Destination = "/dashboard"
)

// commands maps destinations to the CLI invocation that reaches them.
var commands = map[Destination]string{
	Login:     "edustore login",
	Dashboard: "edustore dashboard",
}

// Command returns the CLI invocation for a destination.
func Command(d Destination) string {
	if c, ok := commands[d]; ok {
		return c
	}
	return "edustore"
}

// Navigator performs redirects on behalf of guard decisions and
// dispatcher events.
type Navigator struct {
	out io.Writer
}

// NewNavigator creates a navigator writing to out; nil selects stderr.
func NewNavigator(out io.Writer) *Navigator {
	if out == nil {
		out = os.Stderr
	}
	return &Navigator{out: out}
}

// Redirect announces the redirect target. In the CLI the "redirect" is a
// pointer at the command that reaches the destination.
func (n *Navigator) Redirect(d Destination) {
	switch d {
	case Login:
		fmt.Fprintln(n.out, "🔒 You need to be logged in for this.")
		fmt.Fprintf(n.out, "   Run '%s' to get started.\n", Command(d))
	case Dashboard:
		fmt.Fprintln(n.out, "👋 You're already logged in.")
		fmt.Fprintf(n.out, "   Run '%s' to continue.\n", Command(d))
	default:
		fmt.Fprintf(n.out, "➡️  Continue at %s\n", d)
	}
}

// SessionExpired handles an authority rejection surfacing from the request
// layer: the credentials are already gone, so all that remains is sending
// the user back to the unauthenticated entry point.
func (n *Navigator) SessionExpired() {
	fmt.Fprintln(n.out, "⛔ Your session has expired and has been cleared.")
	fmt.Fprintf(n.out, "   Run '%s' to sign in again.\n", Command(Login))
}
