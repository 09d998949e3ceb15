// Package testutil carries the shared test fakes, chiefly an in-memory
// types.FS so resolver tests can declare which candidate paths exist
// without touching the real filesystem.
package testutil
