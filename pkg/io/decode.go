package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/graphloom/pkg/errors"
)

// Decode parses data in the given format into generic values.
//
// Mappings become map[string]any regardless of format. An empty YAML
// document decodes to nil.
func Decode(data []byte, format Format) (any, error) {
	var v any
	switch format {
	case FormatJSON:
		if err := decodeJSON(data, &v); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
		}
	case FormatJSONC:
		if err := decodeJSON(jsonc.ToJSON(data), &v); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode jsonc")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml")
		}
	case FormatTOML:
		m := make(map[string]any)
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&m); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
		}
		v = m
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}
	return normalize(v), nil
}

// DecodeMap is [Decode] for documents whose top level must be a mapping.
func DecodeMap(data []byte, format Format) (map[string]any, error) {
	v, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return map[string]any{}, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "top-level %s value must be an object, got %T", format, v)
	}
	return m, nil
}

// ReadFile reads path and decodes it in the format implied by its extension.
func ReadFile(path string) (any, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	v, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// ReadMap is [ReadFile] for documents whose top level must be a mapping.
func ReadMap(path string) (map[string]any, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	m, err := DecodeMap(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ReadJSON decodes a single JSON value from r, keeping numbers as
// json.Number. ReadJSON does not close r.
func ReadJSON(r io.Reader) (any, error) {
	var v any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return v, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "file not found: %s", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func decodeJSON(data []byte, v *any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected data after top-level value")
	}
	return nil
}

// normalize converts the map shapes produced by the YAML and TOML decoders
// into map[string]any and []any.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalize(e)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = normalize(e)
		}
		return m
	case []map[string]any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalize(e)
		}
		return out
	case []any:
		for i, e := range t {
			t[i] = normalize(e)
		}
		return t
	default:
		return v
	}
}
