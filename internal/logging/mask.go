// Copyright (c) 2025 Edu Commerce
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides utilities for secure logging and error presentation.
// It includes functions for masking sensitive information in log messages and
// formatting errors for user-friendly display while protecting credentials.
//
// The package helps ensure that sensitive data like passwords and session
// tokens are not accidentally exposed in logs or error messages shown to users.
package logging

import (
	"regexp"
	"strings"
)

var (
	rePassword  = regexp.MustCompile(`(?i)(password=)([^\s;]+)`)
	reToken     = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._-]+)`)
	reJSONToken = regexp.MustCompile(`(?i)("(?:token|password)"\s*:\s*")([^"]+)(")`)
	reAuthHdr   = regexp.MustCompile(`(?i)(authorization:\s*)(\S+\s+\S+)`)
)

// Mask replaces sensitive values in the input string with "*".
// Bearer tokens, password parameters, Authorization headers, and
// token/password JSON fields are all covered.
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reJSONToken.ReplaceAllString(out, "$1***$3")
	out = reAuthHdr.ReplaceAllString(out, "$1***")
	out = reToken.ReplaceAllString(out, "$1***")
	// Basic env-like pairs key=VALUE; mask common secret keys
	for _, k := range []string{"AUTH_TOKEN", "ACCESS_TOKEN"} {
		out = strings.ReplaceAll(out, k+"=", k+"=***")
	}
	return out
}
