// Copyright (c) 2025 Edu Commerce
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"edustore/cli/internal/account"
	"edustore/cli/internal/api"
	"edustore/cli/internal/auth"
	"edustore/cli/internal/guard"
	"edustore/cli/internal/httperrors"
	"edustore/cli/internal/terminal"
)

var (
	loginEmail    string
	loginPassword string
)

// loginCmd represents the login command. It collects credentials, validates
// them locally, exchanges them for a session, and persists the session so
// subsequent commands run authenticated.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Sign in with your email and password",
	Long: `The login command signs you in to the store. Credentials are checked
locally first: an implausible email or a password shorter than 6 characters
is rejected next to the offending field before anything is sent.

On success the session token and your profile are stored securely in the
OS keychain, and every subsequent command runs authenticated until you
log out or the session expires.

If you are already logged in, login redirects you to the dashboard.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		// The login view demands the absence of a session.
		if d := a.authorize(guard.Guard{Requirement: guard.RequireGuest}); d.State != guard.Authorized {
			return nil
		}

		creds, err := collectCredentials()
		if err != nil {
			return err
		}

		// Field-level validation happens before any network call.
		if err := creds.Validate(); err != nil {
			printFieldErrors(err)
			return errors.New("invalid credentials")
		}

		attempt := a.session.BeginLogin()
		stopSpinner := startInlineSpinner(os.Stdout, "Signing in", spinnerFrames, 120*time.Millisecond)

		token, user, err := a.auth.Login(cmd.Context(), creds)
		stopSpinner()

		if err != nil {
			msg := err.Error()
			var apiErr *api.Error
			if errors.As(err, &apiErr) {
				msg = apiErr.Message
				if apiErr.IsNetwork() {
					a.session.LoginFailed(attempt, msg)
					return httperrors.FormatNetworkError(err, "signing in")
				}
			}
			a.session.LoginFailed(attempt, msg)
			pterm.Error.Println(msg)
			return errors.New("login failed")
		}

		a.session.LoginSucceeded(attempt, token, user)
		fmt.Println(loginGreeting(user))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email address")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
}

// collectCredentials reads credentials from flags, prompting interactively
// for anything missing. The password line is scrubbed from the terminal
// after entry.
func collectCredentials() (auth.Credentials, error) {
	creds := auth.Credentials{Email: loginEmail, Password: loginPassword}

	if creds.Email == "" {
		email, err := pterm.DefaultInteractiveTextInput.Show("Email")
		if err != nil {
			return creds, err
		}
		creds.Email = email
	}

	if creds.Password == "" {
		password, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
		if err != nil {
			return creds, err
		}
		creds.Password = password
		terminal.ClearPreviousLines(len("Password: ") + len(password))
	}

	return creds, nil
}

// printFieldErrors renders validation messages next to their field names.
func printFieldErrors(err error) {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) || apiErr.Errors == nil {
		pterm.Error.Println(err.Error())
		return
	}
	for _, field := range []string{"email", "password"} {
		for _, msg := range apiErr.FieldErrors(field) {
			pterm.Error.Printf("%s: %s\n", field, msg)
		}
	}
}

// loginGreeting returns a friendly greeting for the signed-in user.
func loginGreeting(u *account.User) string {
	name := u.Name
	if name == "" {
		name = u.Email
	}
	greetings := []string{
		"🎉 Welcome back, %s!",
		"✨ Great to see you, %s!",
		"👋 Hello %s! Happy shopping!",
		"✅ Signed in as %s",
	}
	return fmt.Sprintf(greetings[rand.Intn(len(greetings))], name)
}
