package testutil

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFS_Stat(t *testing.T) {
	m := NewMemoryFSWith("x_y.foo", "proj/test/users_test.rb")

	info, err := m.Stat("x_y.foo")
	require.NoError(t, err)
	assert.Equal(t, "x_y.foo", info.Name())

	_, err = m.Stat("missing.foo")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMemoryFS_PathsAreOpaque(t *testing.T) {
	m := NewMemoryFSWith("x_y.foo")

	// No normalization: a differently spelled path is a different entry.
	_, err := m.Stat("./x_y.foo")
	assert.Error(t, err)
}

func TestMemoryFS_ReadFile(t *testing.T) {
	m := NewMemoryFS()
	m.AddFile("a.txt", []byte("hello"))

	content, err := m.ReadFile("a.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), content)
}

func TestMemoryFS_InjectError(t *testing.T) {
	m := NewMemoryFSWith("a.txt")
	m.InjectError("a.txt", fmt.Errorf("disk on fire"))

	_, err := m.Stat("a.txt")
	assert.EqualError(t, err, "disk on fire")
}

func TestMemoryFS_RemoveFile(t *testing.T) {
	m := NewMemoryFSWith("a.txt")
	m.RemoveFile("a.txt")

	_, err := m.Stat("a.txt")
	assert.Error(t, err)
}

func TestMemoryFS_ReadDir(t *testing.T) {
	m := NewMemoryFSWith("proj/a.go", "proj/b.go", "proj/sub/c.go")

	entries, err := m.ReadDir("proj")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "a.go", entries[0].Name())
	assert.Equal(t, "sub", entries[2].Name())
	assert.True(t, entries[2].IsDir())

	// FileInfo agrees with the entry about what is a directory.
	info, err := entries[2].Info()
	require.NoError(t, err)
	assert.True(t, info.Mode().IsDir())

	info, err = entries[0].Info()
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
}
