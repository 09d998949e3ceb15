package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/relfiles/pkg/errors"
	"github.com/arthur-debert/relfiles/pkg/style"
	"github.com/arthur-debert/relfiles/pkg/types"
)

// Renderer renders command results. A single renderer is built per
// invocation, with color decided up front by the style package.
type Renderer struct {
	colored bool
}

// NewRenderer creates a renderer. When colored is false, lipgloss is pinned
// to the ASCII profile so styled text degrades to plain text.
func NewRenderer(colored bool) *Renderer {
	if !colored {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{colored: colored}
}

// RenderResolve renders a resolution result in the requested format.
func (r *Renderer) RenderResolve(res *types.ResolveResult, f Format) (string, error) {
	switch f {
	case FormatJSON:
		return marshalJSON(res)
	case FormatYAML:
		return marshalYAML(res)
	case FormatXML:
		return resolveXML(res)
	default:
		return r.resolveText(res), nil
	}
}

// RenderGroups renders the registered groups in the requested format.
func (r *Renderer) RenderGroups(res *types.ListGroupsResult, f Format) (string, error) {
	switch f {
	case FormatJSON:
		return marshalJSON(res)
	case FormatYAML:
		return marshalYAML(res)
	case FormatXML:
		return groupsXML(res)
	default:
		return r.groupsText(res), nil
	}
}

func (r *Renderer) resolveText(res *types.ResolveResult) string {
	if !res.Matched {
		return style.MutedStyle.Render(fmt.Sprintf("no related files for %s", res.Input))
	}

	var b strings.Builder

	title := fmt.Sprintf("%d related files", res.Set.Len())
	if res.GroupName != "" {
		title += " (" + res.GroupName + ")"
	}
	b.WriteString(style.TitleStyle.Render(title) + "\n")

	for i, p := range res.Set.Paths {
		marker := "  "
		line := style.PathStyle.Render(p)
		if i == res.Set.OriginIndex {
			marker = "* "
			line = style.OriginPathStyle.Render(p)
		}
		b.WriteString(marker + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(r.preview(res.Set))

	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) groupsText(res *types.ListGroupsResult) string {
	if len(res.Groups) == 0 {
		return style.MutedStyle.Render("no groups registered")
	}

	var b strings.Builder
	b.WriteString(style.TitleStyle.Render("Registered groups") + "\n\n")

	for _, g := range res.Groups {
		name := g.Name
		if name == "" {
			name = fmt.Sprintf("group %d", g.Priority)
		}
		b.WriteString(fmt.Sprintf("%s %s\n", pterm.Info.Prefix.Text, style.GroupNameStyle.Render(name)))
		for _, p := range g.Patterns {
			b.WriteString("    " + style.PathStyle.Render(p) + "\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func marshalJSON(v interface{}) (string, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot marshal to json")
	}
	return string(out), nil
}

func marshalYAML(v interface{}) (string, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot marshal to yaml")
	}
	return strings.TrimRight(string(out), "\n"), nil
}
