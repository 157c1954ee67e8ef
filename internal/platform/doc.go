// Package platform resolves per-user directories for the loader in an
// OS-appropriate way, keeping path conventions out of the rest of the code.
package platform
