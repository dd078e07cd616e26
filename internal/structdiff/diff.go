package structdiff

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// DiffKind classifies a single reported difference.
type DiffKind int

const (
	// ValueChanged: same kind on both sides, different content.
	ValueChanged DiffKind = iota
	// TypeChanged: the two sides hold different kinds.
	TypeChanged
	// ItemAdded: present only on the right side.
	ItemAdded
	// ItemRemoved: present only on the left side.
	ItemRemoved
)

// String returns the diff-output label for the kind.
func (k DiffKind) String() string {
	switch k {
	case ValueChanged:
		return "value changed"
	case TypeChanged:
		return "type changed"
	case ItemAdded:
		return "item added"
	case ItemRemoved:
		return "item removed"
	default:
		return fmt.Sprintf("diffkind(%d)", int(k))
	}
}

// Difference names one differing path between two values. Left and Right
// are rendered values; the absent side of an added/removed item is empty.
type Difference struct {
	Path  string
	Kind  DiffKind
	Left  string
	Right string
}

// Equal reports whether a and b are deeply structurally equal. Sequence
// order matters; mapping key order does not.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNull:
		return true
	case KindBool:
		return a.Bool == b.Bool
	case KindNumber:
		return numberEqual(a.Number, b.Number)
	case KindString:
		return a.Str == b.Str
	case KindSequence:
		if len(a.Seq) != len(b.Seq) {
			return false
		}
		for i := range a.Seq {
			if !Equal(a.Seq[i], b.Seq[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(a.Map) != len(b.Map) {
			return false
		}
		for k, av := range a.Map {
			bv, ok := b.Map[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Diff walks a and b and returns every differing path, deterministically
// ordered (mapping keys sorted, sequence indexes ascending). An empty
// result means the values are equal.
func Diff(a, b Value) []Difference {
	var out []Difference
	walk("root", a, b, &out)
	return out
}

func walk(path string, a, b Value, out *[]Difference) {
	if a.Kind != b.Kind {
		*out = append(*out, Difference{
			Path:  path,
			Kind:  TypeChanged,
			Left:  a.Kind.String() + " " + a.render(),
			Right: b.Kind.String() + " " + b.render(),
		})
		return
	}

	switch a.Kind {
	case KindSequence:
		n := min(len(a.Seq), len(b.Seq))
		for i := 0; i < n; i++ {
			walk(path+"["+strconv.Itoa(i)+"]", a.Seq[i], b.Seq[i], out)
		}
		for i := n; i < len(a.Seq); i++ {
			*out = append(*out, Difference{
				Path: path + "[" + strconv.Itoa(i) + "]",
				Kind: ItemRemoved,
				Left: a.Seq[i].render(),
			})
		}
		for i := n; i < len(b.Seq); i++ {
			*out = append(*out, Difference{
				Path:  path + "[" + strconv.Itoa(i) + "]",
				Kind:  ItemAdded,
				Right: b.Seq[i].render(),
			})
		}
	case KindMapping:
		keys := make([]string, 0, len(a.Map)+len(b.Map))
		for k := range a.Map {
			keys = append(keys, k)
		}
		for k := range b.Map {
			if _, ok := a.Map[k]; !ok {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			childPath := path + "[" + strconv.Quote(k) + "]"
			av, inA := a.Map[k]
			bv, inB := b.Map[k]
			switch {
			case inA && inB:
				walk(childPath, av, bv, out)
			case inA:
				*out = append(*out, Difference{Path: childPath, Kind: ItemRemoved, Left: av.render()})
			default:
				*out = append(*out, Difference{Path: childPath, Kind: ItemAdded, Right: bv.render()})
			}
		}
	default:
		if !Equal(a, b) {
			*out = append(*out, Difference{
				Path:  path,
				Kind:  ValueChanged,
				Left:  a.render(),
				Right: b.render(),
			})
		}
	}
}

// Format renders differences as indented human-readable lines, one per
// differing path.
func Format(diffs []Difference) string {
	var sb strings.Builder
	for _, d := range diffs {
		sb.WriteString("  ")
		sb.WriteString(d.Path)
		sb.WriteString(": ")
		sb.WriteString(d.Kind.String())
		switch d.Kind {
		case ItemAdded:
			sb.WriteString(": " + d.Right)
		case ItemRemoved:
			sb.WriteString(": " + d.Left)
		default:
			sb.WriteString(": " + d.Left + " -> " + d.Right)
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
