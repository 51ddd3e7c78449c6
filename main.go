// Package main is the entry point for the Edu Commerce storefront CLI.
package main

import (
	"edustore/cli/cmd"
)

func main() {
	cmd.Execute()
}
