// Package library manages the on-disk games directory.
//
// Layout:
//
//	<root>/<date>/            one installed build per date
//	<root>/<date>/manifest.json
//	<root>/.staging/<date>/   in-flight downloads, promoted by rename
//
// The manifest is written last and the staging directory is renamed into
// place in one step, so an interrupted download never produces a directory
// that passes for a complete install.
package library
