// Package download orchestrates fetching a game build: manifest first, then
// every file streamed through a digest check into a staging directory, which
// is promoted into the library only once the whole build verifies. Remote
// fetches are retried a bounded number of times; integrity failures and
// missing builds are not.
package download
