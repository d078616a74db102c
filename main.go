// Package main is the entry point for the mpakit CLI.
package main

import "mpakit.dev/pkg/mpakit/cmd"

func main() {
	cmd.Execute()
}
