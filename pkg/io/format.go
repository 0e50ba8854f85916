package io

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/graphloom/pkg/errors"
)

// Format identifies a document encoding.
type Format string

// Supported formats.
const (
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
)

var extensions = map[string]Format{
	".json":  FormatJSON,
	".jsonc": FormatJSONC,
	".yaml":  FormatYAML,
	".yml":   FormatYAML,
	".toml":  FormatTOML,
}

// DetectFormat returns the format implied by the extension of path.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"unsupported format %q; use .json, .jsonc, .yaml, .yml or .toml", ext)
}

// ParseFormat parses a format name such as "yaml" or "yml".
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !strings.HasPrefix(name, ".") {
		name = "." + name
	}
	return DetectFormat(name)
}

// Formats lists the format names accepted by [ParseFormat].
func Formats() []string {
	return []string{"json", "jsonc", "yaml", "toml"}
}
