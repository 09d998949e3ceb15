// Package output renders resolution results and group listings in the
// formats the CLI offers: styled text, json, yaml, and xml.
package output

import (
	"fmt"
	"strings"
)

// Format represents the output format type
type Format int

const (
	// FormatText renders human-readable, optionally styled output.
	FormatText Format = iota
	// FormatJSON renders machine-readable JSON output.
	FormatJSON
	// FormatYAML renders YAML output.
	FormatYAML
	// FormatXML renders XML output.
	FormatXML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatXML:
		return "xml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xml":
		return FormatXML, nil
	default:
		return FormatText, fmt.Errorf("unknown format: %s", s)
	}
}
