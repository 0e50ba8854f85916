package props

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
)

// Type identifies which variant a Value holds.
type Type uint8

// Value variants.
const (
	TypeNull Type = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeString
	TypeStringList
)

// String returns the variant name.
func (t Type) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeStringList:
		return "string list"
	default:
		return "null"
	}
}

// Value is a single property value. The zero Value is null.
type Value struct {
	typ  Type
	b    bool
	i    int64
	f    float64
	s    string
	list []string
}

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{typ: TypeBool, b: b} }

// Int returns an integer Value.
func Int(i int64) Value { return Value{typ: TypeInt, i: i} }

// Float returns a floating point Value.
func Float(f float64) Value { return Value{typ: TypeFloat, f: f} }

// String returns a string Value.
func String(s string) Value { return Value{typ: TypeString, s: s} }

// StringList returns a string list Value. The slice is copied.
func StringList(items ...string) Value {
	return Value{typ: TypeStringList, list: slices.Clone(items)}
}

// Type returns the variant held by v.
func (v Value) Type() Type { return v.typ }

// IsNull reports whether v is the zero Value.
func (v Value) IsNull() bool { return v.typ == TypeNull }

// Bool returns the boolean and whether v holds one.
func (v Value) Bool() (bool, bool) { return v.b, v.typ == TypeBool }

// Int returns the integer and whether v holds one.
func (v Value) Int() (int64, bool) { return v.i, v.typ == TypeInt }

// Str returns the string and whether v holds one.
func (v Value) Str() (string, bool) { return v.s, v.typ == TypeString }

// List returns a copy of the string list and whether v holds one.
func (v Value) List() ([]string, bool) {
	if v.typ != TypeStringList {
		return nil, false
	}
	return slices.Clone(v.list), true
}

// Number returns v as a float64. Ints convert, and strings are parsed.
// The second result is false when v is not numeric.
func (v Value) Number() (float64, bool) {
	switch v.typ {
	case TypeInt:
		return float64(v.i), true
	case TypeFloat:
		return v.f, true
	case TypeString:
		f, err := strconv.ParseFloat(v.s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// Equal reports whether v and o hold the same variant and value.
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ {
		return false
	}
	switch v.typ {
	case TypeBool:
		return v.b == o.b
	case TypeInt:
		return v.i == o.i
	case TypeFloat:
		return v.f == o.f
	case TypeString:
		return v.s == o.s
	case TypeStringList:
		return slices.Equal(v.list, o.list)
	}
	return true
}

// Interface returns v as a plain Go value (bool, int64, float64, string,
// []string or nil).
func (v Value) Interface() any {
	switch v.typ {
	case TypeBool:
		return v.b
	case TypeInt:
		return v.i
	case TypeFloat:
		return v.f
	case TypeString:
		return v.s
	case TypeStringList:
		return slices.Clone(v.list)
	}
	return nil
}

// String renders v for display.
func (v Value) String() string {
	switch v.typ {
	case TypeBool:
		return strconv.FormatBool(v.b)
	case TypeInt:
		return strconv.FormatInt(v.i, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case TypeString:
		return v.s
	case TypeStringList:
		return FormatEnumSet(v.list)
	}
	return "null"
}

// MarshalJSON encodes v as the matching JSON scalar or array.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.typ {
	case TypeFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return nil, fmt.Errorf("unsupported float value %v", v.f)
		}
		return json.Marshal(v.f)
	case TypeStringList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	}
	return json.Marshal(v.Interface())
}

// UnmarshalJSON decodes a JSON scalar or array. Numbers without a fraction
// or exponent become Int; everything else numeric becomes Float.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	val, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

// FromAny converts a decoded JSON, YAML or TOML value to a Value.
// Lists of scalars become StringList. Maps are rejected; use Flatten.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Value{}, nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return Int(int64(t)), nil
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case uint64:
		if t > math.MaxInt64 {
			return Float(float64(t)), nil
		}
		return Int(int64(t)), nil
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("invalid number %q", t.String())
		}
		return Float(f), nil
	case string:
		return String(t), nil
	case []string:
		return StringList(t...), nil
	case []any:
		items := make([]string, 0, len(t))
		for _, item := range t {
			switch item.(type) {
			case map[string]any, []any:
				return Value{}, fmt.Errorf("nested collections are not supported in lists")
			}
			val, err := FromAny(item)
			if err != nil {
				return Value{}, err
			}
			items = append(items, val.String())
		}
		return StringList(items...), nil
	}
	return Value{}, fmt.Errorf("unsupported property value of type %T", x)
}
