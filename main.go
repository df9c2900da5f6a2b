package main

import "github.com/openmrn/cdi-gen/cmd"

// main is the entry point of the cdi-gen CLI application.
// It executes the root command which handles argument parsing and generation.
func main() {
	cmd.Execute()
}
