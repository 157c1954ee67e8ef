// Package domain holds the core types shared across the loader: game builds
// keyed by date, file manifests with content digests, and the interfaces
// between the CLI, the game server client, the local library and the
// download service.
package domain
