// Package state keeps per-user records for the lifetime of the process.
// Nothing is persisted; a restart starts from an empty store.
package state
