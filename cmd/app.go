// Copyright (c) 2025 Edu Commerce
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"

	"edustore/cli/internal/api"
	"edustore/cli/internal/auth"
	"edustore/cli/internal/catalog"
	"edustore/cli/internal/config"
	"edustore/cli/internal/credstore"
	"edustore/cli/internal/guard"
	"edustore/cli/internal/nav"
	"edustore/cli/internal/session"
)

// app wires the storefront services together for one command invocation.
// The session container is hydrated from durable storage before any
// authorization decision is made.
type app struct {
	cfg       config.Config
	creds     *credstore.Store
	session   *session.Store
	client    *api.Client
	auth      *auth.Service
	catalog   *catalog.Service
	navigator *nav.Navigator
}

// newApp loads configuration and constructs the service graph. The
// dispatcher's unauthorized event is routed to the navigator, never
// handled inside the request layer itself.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	creds := credstore.New()
	client := api.New(cfg.APIURL, cfg.HTTPTimeout, creds)
	sess := session.NewStore(creds)
	navigator := nav.NewNavigator(os.Stderr)

	client.SetUnauthorizedHandler(func() {
		// Credentials are already erased by the dispatcher; tear down the
		// in-memory session and send the user back to the entry point.
		sess.ClearAuth()
		navigator.SessionExpired()
	})

	a := &app{
		cfg:       cfg,
		creds:     creds,
		session:   sess,
		client:    client,
		auth:      auth.NewService(client, creds),
		catalog:   catalog.NewService(client),
		navigator: navigator,
	}

	a.session.Hydrate()
	return a, nil
}

// authorize evaluates a view requirement against the current session and
// performs the redirect when the requirement fails. Callers render their
// content only on an Authorized decision.
func (a *app) authorize(g guard.Guard) guard.Decision {
	d := g.Evaluate(a.session.Snapshot())
	if d.State == guard.Redirecting {
		a.navigator.Redirect(d.Target)
	}
	return d
}
