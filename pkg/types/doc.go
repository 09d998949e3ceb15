// Package types defines the shared data structures and interfaces used
// across relfiles. Keeping them here avoids import cycles between the
// core matching packages and the command layer.
package types
