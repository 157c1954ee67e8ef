// Package app wires application dependencies for the CLI.
//
// It builds the logger, games directory, server client, library and download
// service from Config, exposing them via the Wire struct for commands to use.
package app
