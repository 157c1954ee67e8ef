// Package digest computes the content digests recorded in game manifests.
// All digests are BLAKE2b-256, hex encoded.
package digest
