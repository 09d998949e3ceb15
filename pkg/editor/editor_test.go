package editor

import (
	"testing"

	"github.com/arthur-debert/relfiles/pkg/layout"
	"github.com/arthur-debert/relfiles/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLayout(t *testing.T, origin int, paths ...string) *layout.Layout {
	t.Helper()
	l, err := layout.Compute(&types.ResolvedSet{Paths: paths, OriginIndex: origin})
	require.NoError(t, err)
	return l
}

func TestCommand_Pair(t *testing.T) {
	cmd := Command("vim", mustLayout(t, 0, "left.c", "right.h"))

	assert.Equal(t, []string{
		"vim",
		"left.c",
		"-c", "botright vertical split right.h",
		"-c", "wincmd t",
		"-c", "wincmd l",
	}, cmd.Args)
}

func TestCommand_Triple(t *testing.T) {
	cmd := Command("vim", mustLayout(t, -1, "a", "b", "c"))

	assert.Equal(t, []string{
		"vim",
		"a",
		"-c", "botright vertical split b",
		"-c", "belowright split c",
		"-c", "wincmd t",
		"-c", "wincmd l",
		"-c", "wincmd j",
	}, cmd.Args)
}

func TestCommand_Quad(t *testing.T) {
	cmd := Command("vim", mustLayout(t, 2, "a", "b", "c", "d"))

	assert.Equal(t, []string{
		"vim",
		"a",
		"-c", "belowright split b",
		"-c", "botright vertical split c",
		"-c", "belowright split d",
		"-c", "wincmd t",
	}, cmd.Args)
}

func TestCommand_EditorWithArgs(t *testing.T) {
	cmd := Command("nvim -u NONE", mustLayout(t, 0, "a", "b"))
	assert.Equal(t, "nvim", cmd.Args[0])
	assert.Equal(t, "-u", cmd.Args[1])
	assert.Equal(t, "NONE", cmd.Args[2])
}

func TestCommand_DefaultEditor(t *testing.T) {
	cmd := Command("", mustLayout(t, 0, "a", "b"))
	assert.Equal(t, "vim", cmd.Args[0])
}

func TestCommand_EscapesPaths(t *testing.T) {
	cmd := Command("vim", mustLayout(t, 0, "a file.c", "b%2.h"))
	assert.Contains(t, cmd.Args, "botright vertical split b\\%2.h")
}
