// Package main is the entry point for the ridge CLI.
package main

import "ridge.dev/pkg/ridge/cmd"

func main() {
	cmd.Execute()
}
