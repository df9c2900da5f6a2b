// Package version holds the release version of cdi-gen.
package version

// Version is overridden at link time with -ldflags "-X".
var Version = "v0.1.0"
