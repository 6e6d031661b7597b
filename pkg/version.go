// Package d4s keeps build information for the d4s command line tool.
package d4s

var (
	// Version of the application, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
