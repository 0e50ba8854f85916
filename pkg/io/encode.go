package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/graphloom/pkg/errors"
)

// WriteJSON encodes v as two-space indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes v to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(f, v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode writes v in the given format. Field names come from v's JSON
// encoding, so struct tags only need a json key. TOML output drops null
// values, which TOML cannot represent.
func Encode(w io.Writer, v any, format Format) error {
	switch format {
	case FormatJSON, FormatJSONC:
		return WriteJSON(w, v)
	}

	plain, err := toPlain(v)
	if err != nil {
		return err
	}

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(plain); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		m, ok := dropNulls(plain).(map[string]any)
		if !ok {
			return errors.New(errors.ErrCodeInvalidFormat, "toml output needs an object at the top level")
		}
		if err := toml.NewEncoder(w).Encode(m); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}
}

// toPlain round-trips v through JSON and replaces json.Number with int64 or
// float64 so the YAML and TOML encoders emit numbers, not strings.
func toPlain(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	var out any
	if err := decodeJSON(bytes.TrimSpace(data), &out); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return numbers(out), nil
}

func numbers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = numbers(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = numbers(e)
		}
		return t
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}

func dropNulls(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			if e == nil {
				delete(t, k)
				continue
			}
			t[k] = dropNulls(e)
		}
		return t
	case []any:
		out := t[:0]
		for _, e := range t {
			if e != nil {
				out = append(out, dropNulls(e))
			}
		}
		return out
	default:
		return v
	}
}
