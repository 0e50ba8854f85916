package profile

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/matzehuels/graphloom/pkg/builder"
	"github.com/matzehuels/graphloom/pkg/cache"
	"github.com/matzehuels/graphloom/pkg/canvas"
	"github.com/matzehuels/graphloom/pkg/errors"
	"github.com/matzehuels/graphloom/pkg/graph"
	"github.com/matzehuels/graphloom/pkg/io"
	"github.com/matzehuels/graphloom/pkg/settings"
)

// Bundle field names.
const (
	FieldID       = "profileId"
	FieldVersion  = "profileVersion"
	FieldChecksum = "checksum"
	FieldSettings = "elkSettings"
)

// Bundle is the stored form of a profile.
type Bundle struct {
	ProfileID      string         `json:"profileId" bson:"profileId"`
	ProfileVersion int            `json:"profileVersion" bson:"profileVersion"`
	Checksum       string         `json:"checksum" bson:"checksum"`
	ElkSettings    map[string]any `json:"elkSettings" bson:"elkSettings"`
}

// Map returns the bundle in the generic shape accepted by [Resolve].
func (b *Bundle) Map() map[string]any {
	return map[string]any{
		FieldID:       b.ProfileID,
		FieldVersion:  b.ProfileVersion,
		FieldChecksum: b.Checksum,
		FieldSettings: b.ElkSettings,
	}
}

// Resolved is a bundle whose settings parsed and validated.
type Resolved struct {
	ProfileID      string             `json:"profileId"`
	ProfileVersion int                `json:"profileVersion"`
	Checksum       string             `json:"checksum"`
	Settings       *settings.Settings `json:"settings"`
}

// Resolve validates a generic bundle and parses its settings. Settings are
// parsed from a key-sorted canonical copy of elkSettings.
func Resolve(bundle map[string]any) (*Resolved, error) {
	for _, key := range []string{FieldID, FieldVersion, FieldChecksum, FieldSettings} {
		if _, ok := bundle[key]; !ok {
			return nil, errors.New(errors.ErrCodeInvalidProfile,
				"Profile bundle is missing required field '%s'.", key)
		}
	}

	version, err := versionOf(bundle[FieldVersion])
	if err != nil {
		return nil, err
	}
	raw, ok := bundle[FieldSettings].(map[string]any)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidProfile,
			"Profile bundle field 'elkSettings' must be an object.")
	}

	canonical, err := Canonical(raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProfile, err, "encode elkSettings")
	}
	s, err := settings.Parse(canonical, io.FormatJSON)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProfile, err,
			"Profile bundle field 'elkSettings' is invalid: %s", errors.UserMessage(err))
	}

	return &Resolved{
		ProfileID:      text(bundle[FieldID]),
		ProfileVersion: version,
		Checksum:       text(bundle[FieldChecksum]),
		Settings:       s,
	}, nil
}

// BuildCanvas resolves bundle and builds g with its settings.
func BuildCanvas(g *graph.Graph, bundle map[string]any, opts ...builder.Option) (*canvas.Canvas, *Resolved, error) {
	resolved, err := Resolve(bundle)
	if err != nil {
		return nil, nil, err
	}
	c, err := builder.Build(g, resolved.Settings, opts...)
	if err != nil {
		return nil, nil, err
	}
	return c, resolved, nil
}

// Canonical encodes v as compact JSON with sorted object keys.
func Canonical(v map[string]any) ([]byte, error) {
	return json.Marshal(v)
}

// Checksum returns the SHA-256 of the canonical elkSettings encoding.
func Checksum(elkSettings map[string]any) (string, error) {
	data, err := Canonical(elkSettings)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}

func versionOf(v any) (int, error) {
	bad := func() error {
		return errors.New(errors.ErrCodeInvalidProfile,
			"Profile bundle field 'profileVersion' must be an integer, got %v.", v)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, bad()
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, bad()
		}
		return int(i), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, bad()
		}
		return i, nil
	}
	return 0, bad()
}

func text(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// FromMap converts a generic bundle into a Bundle, resolving it on the way
// so that invalid bundles never reach a store.
func FromMap(m map[string]any) (*Bundle, error) {
	r, err := Resolve(m)
	if err != nil {
		return nil, err
	}
	raw, _ := m[FieldSettings].(map[string]any)
	return &Bundle{
		ProfileID:      r.ProfileID,
		ProfileVersion: r.ProfileVersion,
		Checksum:       r.Checksum,
		ElkSettings:    plain(raw).(map[string]any),
	}, nil
}

// plain replaces json.Number values so bundles encode cleanly as BSON.
func plain(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = plain(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = plain(item)
		}
		return out
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		f, _ := t.Float64()
		return f
	}
	return v
}

// sortSummaries orders by id, then version.
func sortSummaries(s []Summary) {
	sort.Slice(s, func(i, j int) bool {
		if s[i].ProfileID != s[j].ProfileID {
			return s[i].ProfileID < s[j].ProfileID
		}
		return s[i].ProfileVersion < s[j].ProfileVersion
	})
}
