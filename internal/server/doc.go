// Package server provides the HTTP implementation of domain.ServerClient.
//
// The game server publishes daily builds as JSON over HTTP:
//
//	GET /games
//	    List available builds.
//
//	GET /games/{date}/manifest
//	    The file manifest for one build.
//
//	GET /games/{date}/files/{name}
//	    Raw bytes of one asset.
//
// Missing builds come back as domain.ErrGameNotFound; other non-2xx statuses
// are returned as *StatusError carrying the URL and status so callers can
// decide whether a retry is worthwhile.
package server
