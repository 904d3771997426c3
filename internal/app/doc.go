// Package app wires application dependencies for the CLI.
//
// It loads Config from the home directory (config.yaml, optional), builds
// the logger, the result store and the stats service, and exposes them via
// the Wire struct for commands to use.
package app
