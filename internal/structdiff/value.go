package structdiff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

// String returns the lower-case kind name used in diff output.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a tagged union over the generic value model. Exactly the field
// matching Kind carries meaning; the rest are zero.
type Value struct {
	Kind   Kind
	Bool   bool
	Number string // decimal text, preserved exactly as parsed
	Str    string
	Seq    []Value
	Map    map[string]Value
}

// Null is the KindNull value.
var Null = Value{Kind: KindNull}

// Normalize converts an arbitrary Go value into the generic value model via
// its JSON representation. Values that cannot be represented as JSON
// (channels, funcs, cyclic graphs) return an error; such inputs are defined
// as not comparable.
func Normalize(v any) (Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Value{}, fmt.Errorf("value is not comparable: %w", err)
	}
	return FromJSON(data)
}

// FromJSON parses JSON text into the generic value model. Numbers are kept
// as decimal text so normalization never loses precision.
func FromJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, fmt.Errorf("decode value: %w", err)
	}
	// Reject trailing garbage after the first document.
	if dec.More() {
		return Value{}, fmt.Errorf("decode value: unexpected trailing data")
	}
	return fromDecoded(raw)
}

func fromDecoded(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null, nil
	case bool:
		return Value{Kind: KindBool, Bool: v}, nil
	case json.Number:
		return Value{Kind: KindNumber, Number: v.String()}, nil
	case string:
		return Value{Kind: KindString, Str: v}, nil
	case []any:
		seq := make([]Value, 0, len(v))
		for _, item := range v {
			iv, err := fromDecoded(item)
			if err != nil {
				return Value{}, err
			}
			seq = append(seq, iv)
		}
		return Value{Kind: KindSequence, Seq: seq}, nil
	case map[string]any:
		m := make(map[string]Value, len(v))
		for key, item := range v {
			iv, err := fromDecoded(item)
			if err != nil {
				return Value{}, err
			}
			m[key] = iv
		}
		return Value{Kind: KindMapping, Map: m}, nil
	default:
		return Value{}, fmt.Errorf("unsupported decoded type %T", raw)
	}
}

// numberEqual compares two decimal texts numerically where possible, so
// "1" and "1.0" compare equal the way dynamic-language comparisons treat
// them. Falls back to text comparison when either side does not parse.
func numberEqual(a, b string) bool {
	if a == b {
		return true
	}
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA != nil || errB != nil {
		return false
	}
	return fa == fb
}

// render returns a compact single-line representation of v for diff output.
func (v Value) render() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindNumber:
		return v.Number
	case KindString:
		return strconv.Quote(v.Str)
	case KindSequence:
		parts := make([]string, 0, len(v.Seq))
		for _, item := range v.Seq {
			parts = append(parts, item.render())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMapping:
		keys := make([]string, 0, len(v.Map))
		for k := range v.Map {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, strconv.Quote(k)+": "+v.Map[k].render())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("<%s>", v.Kind)
	}
}
