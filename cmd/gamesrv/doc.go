// Package main runs the development game server used to exercise the loader
// end to end. It scans a directory of game builds at startup, hashes every
// file into a manifest, and serves the loader protocol from memory.
//
// HTTP API
//
//	GET /games
//	    List available builds (date, title, total size, file count).
//
//	GET /games/{date}/manifest
//	    The file manifest for one build, including per-file digests.
//
//	GET /games/{date}/files/{name}
//	    Raw bytes of one asset. Only files listed in the manifest are served.
//
// Behaviour
//
//   - Builds live at <root>/<date>/; directory names that are not YYYY-MM-DD
//     dates are ignored.
//   - Manifests are computed once at startup and held in memory.
//   - A lightweight access log records method, path, status, remote and
//     duration for each request.
//   - The default listen address is :8080.
//
// This server is intended for local development and tests; it performs no
// authentication.
package main
