package settings

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/graphloom/pkg/errors"
	"github.com/matzehuels/graphloom/pkg/io"
	"github.com/matzehuels/graphloom/pkg/props"
)

// Environment variables read by [Settings.ApplyEnv].
const (
	EnvAutoCreate     = "GRAPHLOOM_AUTO_CREATE_MISSING_NODES"
	EnvEstimateLabels = "GRAPHLOOM_ESTIMATE_LABEL_SIZE_FROM_FONT"
)

// Load reads a settings file. The format follows the file extension.
func Load(path string) (*Settings, error) {
	m, err := io.ReadMap(path)
	if err != nil {
		return nil, err
	}
	s, err := FromMap(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes settings from data in the given format.
func Parse(data []byte, format io.Format) (*Settings, error) {
	m, err := io.DecodeMap(data, format)
	if err != nil {
		return nil, err
	}
	return FromMap(m)
}

// FromMap builds settings from a generic document. layout_options and every
// properties block may be nested; they are flattened to dotted keys first.
// auto_create_missing_nodes defaults to true when absent. The result is
// validated.
func FromMap(m map[string]any) (*Settings, error) {
	flat, err := flattenBlocks(m)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSettings, err, "invalid settings")
	}
	data, err := json.Marshal(flat)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSettings, err, "invalid settings")
	}

	s := &Settings{AutoCreateMissingNodes: true}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSettings, err, "invalid settings")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// flattenBlocks copies m, flattening layout_options at the top level and
// any map stored under a "properties" key at any depth.
func flattenBlocks(m map[string]any) (map[string]any, error) {
	out, err := flattenProperties(m, "")
	if err != nil {
		return nil, err
	}
	res := out.(map[string]any)
	if lo, ok := res["layout_options"].(map[string]any); ok {
		p, err := props.Flatten(lo)
		if err != nil {
			return nil, fmt.Errorf("layout_options: %w", err)
		}
		res["layout_options"] = p
	}
	return res, nil
}

func flattenProperties(v any, path string) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			p := joinPath(path, k)
			if nested, ok := e.(map[string]any); ok && k == "properties" {
				flat, err := props.Flatten(nested)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", p, err)
				}
				out[k] = flat
				continue
			}
			conv, err := flattenProperties(e, p)
			if err != nil {
				return nil, err
			}
			out[k] = conv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			conv, err := flattenProperties(e, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	default:
		return v, nil
	}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// ToMap returns s as a generic document using the settings file keys,
// suitable for [io.Encode].
func (s *Settings) ToMap() (map[string]any, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	m, err := io.DecodeMap(data, io.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return m, nil
}

// ApplyEnv overrides the boolean flags from environment variables, read
// through lookup (usually os.LookupEnv). Unset variables leave s unchanged.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	flags := []struct {
		name string
		dst  *bool
	}{
		{EnvAutoCreate, &s.AutoCreateMissingNodes},
		{EnvEstimateLabels, &s.EstimateLabelSizeFromFont},
	}
	for _, f := range flags {
		raw, ok := lookup(f.name)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidSettings, err, "%s must be a boolean, got %q", f.name, raw)
		}
		*f.dst = b
	}
	return nil
}
