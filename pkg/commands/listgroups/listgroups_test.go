package listgroups

import (
	"testing"

	"github.com/arthur-debert/relfiles/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListGroups(t *testing.T) {
	cfg := &config.Config{
		Groups: []config.GroupConfig{
			{Name: "c-header", Patterns: []string{"%1.c", "%1.h"}},
			{Patterns: []string{"%1.go", "%1_test.go"}},
		},
	}

	result := ListGroups(Options{Config: cfg})
	require.Len(t, result.Groups, 2)

	assert.Equal(t, "c-header", result.Groups[0].Name)
	assert.Equal(t, 1, result.Groups[0].Priority)
	assert.Equal(t, []string{"%1.go", "%1_test.go"}, result.Groups[1].Patterns)
	assert.Equal(t, 2, result.Groups[1].Priority)
}

func TestListGroups_Empty(t *testing.T) {
	result := ListGroups(Options{Config: &config.Config{}})
	assert.Empty(t, result.Groups)
}
