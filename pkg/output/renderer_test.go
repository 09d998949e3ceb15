package output

import (
	"encoding/json"
	"testing"

	"github.com/arthur-debert/relfiles/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResolve() *types.ResolveResult {
	return &types.ResolveResult{
		Input:     "main.c",
		Matched:   true,
		GroupName: "c-header",
		Set: &types.ResolvedSet{
			Paths:       []string{"main.c", "main.h"},
			OriginIndex: 0,
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"", FormatText, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xml", FormatXML, false},
		{"XML", FormatXML, false},
		{"csv", FormatText, true},
	}
	for _, tt := range tests {
		f, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, f, tt.in)
	}
}

func TestRenderResolve_Text(t *testing.T) {
	out, err := NewRenderer(false).RenderResolve(sampleResolve(), FormatText)
	require.NoError(t, err)

	assert.Contains(t, out, "2 related files")
	assert.Contains(t, out, "c-header")
	assert.Contains(t, out, "* main.c")
	assert.Contains(t, out, "main.h")
}

func TestRenderResolve_TextNoMatch(t *testing.T) {
	res := &types.ResolveResult{Input: "orphan.txt", Matched: false}
	out, err := NewRenderer(false).RenderResolve(res, FormatText)
	require.NoError(t, err)
	assert.Contains(t, out, "no related files for orphan.txt")
}

func TestRenderResolve_JSON(t *testing.T) {
	out, err := NewRenderer(false).RenderResolve(sampleResolve(), FormatJSON)
	require.NoError(t, err)

	var decoded types.ResolveResult
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.True(t, decoded.Matched)
	assert.Equal(t, []string{"main.c", "main.h"}, decoded.Set.Paths)
}

func TestRenderResolve_YAML(t *testing.T) {
	out, err := NewRenderer(false).RenderResolve(sampleResolve(), FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, out, "matched: true")
	assert.Contains(t, out, "- main.c")
}

func TestRenderResolve_XML(t *testing.T) {
	out, err := NewRenderer(false).RenderResolve(sampleResolve(), FormatXML)
	require.NoError(t, err)

	assert.Contains(t, out, `<resolution input="main.c" matched="true" group="c-header">`)
	assert.Contains(t, out, `<file index="0" origin="true">main.c</file>`)
	assert.Contains(t, out, `<file index="1">main.h</file>`)
}

func TestRenderResolve_PreviewShowsAllPanes(t *testing.T) {
	res := &types.ResolveResult{
		Input:   "a",
		Matched: true,
		Set: &types.ResolvedSet{
			Paths:       []string{"a", "b", "c"},
			OriginIndex: 0,
		},
	}
	out, err := NewRenderer(false).RenderResolve(res, FormatText)
	require.NoError(t, err)
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "b")
	assert.Contains(t, out, "c")
}

func sampleGroups() *types.ListGroupsResult {
	return &types.ListGroupsResult{
		Groups: []types.GroupInfo{
			{Name: "c-header", Priority: 1, Patterns: []string{"%1.c", "%1.h"}},
			{Priority: 2, Patterns: []string{"%1.go", "%1_test.go"}},
		},
	}
}

func TestRenderGroups_Text(t *testing.T) {
	out, err := NewRenderer(false).RenderGroups(sampleGroups(), FormatText)
	require.NoError(t, err)

	assert.Contains(t, out, "Registered groups")
	assert.Contains(t, out, "c-header")
	assert.Contains(t, out, "%1_test.go")
}

func TestRenderGroups_TextEmpty(t *testing.T) {
	out, err := NewRenderer(false).RenderGroups(&types.ListGroupsResult{}, FormatText)
	require.NoError(t, err)
	assert.Contains(t, out, "no groups registered")
}

func TestRenderGroups_XML(t *testing.T) {
	out, err := NewRenderer(false).RenderGroups(sampleGroups(), FormatXML)
	require.NoError(t, err)
	assert.Contains(t, out, `<group priority="1" name="c-header">`)
	assert.Contains(t, out, `<pattern>%1.c</pattern>`)
}

func TestRenderGroups_JSON(t *testing.T) {
	out, err := NewRenderer(false).RenderGroups(sampleGroups(), FormatJSON)
	require.NoError(t, err)

	var decoded types.ListGroupsResult
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Groups, 2)
	assert.Equal(t, "c-header", decoded.Groups[0].Name)
}
