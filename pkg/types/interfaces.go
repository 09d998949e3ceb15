package types

import "io/fs"

// FS abstracts the read-only filesystem operations relfiles performs.
// Resolution only ever checks for existence, but the interface carries the
// small read surface so tests and tooling can share one fake.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)
}
