// Package commands defines the gameloader CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - list       List game builds available on the server
//   - download   Download and install the build for a date
//   - path       Print the resolved local games directory
//   - installed  List locally installed builds
//   - verify     Re-hash an installed build against its manifest
//   - remove     Delete an installed build
//
// # Implementation
//
// The root command loads configuration from the environment, applies flag
// overrides, and builds a dependency graph (server client, library, download
// service) before any subcommand runs, so handlers share one app context.
package commands
