// Package filesystem provides the types.FS implementations relfiles runs
// against. The resolver never touches the OS directly; it goes through the
// injected FS so tests can substitute an in-memory one.
package filesystem
