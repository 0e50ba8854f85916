package props

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Namespace is the prefix shared by every long-form ELK option identifier.
const Namespace = "org.eclipse.elk."

// Well-known option identifiers.
const (
	KeyPortIndex     = Namespace + "port.index"
	KeyFontName      = Namespace + "font.name"
	KeyFontSize      = Namespace + "font.size"
	KeyEdgeThickness = Namespace + "edge.thickness"
	KeyDirection     = Namespace + "direction"
)

// Properties is a bag of layout properties keyed by dotted option key.
// A nil Properties is a valid empty bag for reads.
type Properties map[string]Value

// Clone returns a shallow copy of p. Values are immutable, so the copy is
// independent of p. Clone of nil is an empty, non-nil bag.
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	maps.Copy(out, p)
	return out
}

// Keys returns the keys of p in sorted order.
func (p Properties) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}

// Equal reports whether p and o hold the same keys and values.
func (p Properties) Equal(o Properties) bool {
	return maps.EqualFunc(p, o, Value.Equal)
}

// Map returns p as plain Go values, for encoders that cannot see Value.
func (p Properties) Map() map[string]any {
	out := make(map[string]any, len(p))
	for k, v := range p {
		out[k] = v.Interface()
	}
	return out
}

// Flatten converts a possibly nested map into a flat bag. Nested maps are
// joined with dots: {"spacing": {"nodeNode": 20}} becomes "spacing.nodeNode".
// Null values are dropped.
func Flatten(m map[string]any) (Properties, error) {
	out := make(Properties, len(m))
	if err := flattenInto(out, "", m); err != nil {
		return nil, err
	}
	return out, nil
}

func flattenInto(out Properties, prefix string, m map[string]any) error {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch child := m[k].(type) {
		case map[string]any:
			if err := flattenInto(out, key, child); err != nil {
				return err
			}
		case map[any]any:
			converted := make(map[string]any, len(child))
			for ck, cv := range child {
				converted[fmt.Sprint(ck)] = cv
			}
			if err := flattenInto(out, key, converted); err != nil {
				return err
			}
		default:
			v, err := FromAny(child)
			if err != nil {
				return fmt.Errorf("property %q: %w", key, err)
			}
			if !v.IsNull() {
				out[key] = v
			}
		}
	}
	return nil
}

// Long returns the long-form identifier for key when one is registered,
// otherwise key unchanged.
func Long(key string) string {
	if strings.HasPrefix(key, Namespace) {
		return key
	}
	if long := Namespace + key; Known(long) {
		return long
	}
	return key
}

// Normalize rewrites short-form keys to their registered long form.
//
// Long-form keys present in p are kept as they are and are never replaced by
// a short-form synonym. Unregistered keys pass through unchanged. List values
// of enum-set and int-list options are converted to the bracketed string form
// ELK expects. Normalize is idempotent and does not modify p.
func Normalize(p Properties) Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		if strings.HasPrefix(k, Namespace) {
			out[k] = canonicalValue(k, v)
		}
	}
	for _, k := range p.Keys() {
		if strings.HasPrefix(k, Namespace) {
			continue
		}
		long := Long(k)
		if long == k {
			out[k] = p[k]
			continue
		}
		if _, exists := out[long]; !exists {
			out[long] = canonicalValue(long, p[k])
		}
	}
	return out
}

// canonicalValue applies the encoding ELK expects for the option's kind.
func canonicalValue(key string, v Value) Value {
	if v.Type() != TypeStringList {
		return v
	}
	opt, ok := Lookup(key)
	if !ok {
		return v
	}
	switch opt.Kind {
	case KindEnumSet, KindIntList:
		return String(FormatEnumSet(v.list))
	}
	return v
}

// Merge combines inherited defaults with explicit instance properties.
// Both sides are normalized first; explicit values win key by key.
func Merge(inherited, explicit Properties) Properties {
	out := Normalize(inherited)
	for k, v := range Normalize(explicit) {
		out[k] = v
	}
	return out
}
