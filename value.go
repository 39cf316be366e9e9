package yang

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Kind enumerates the shapes a Value can take.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

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
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// YAML short tags recorded on scalars.
const (
	tagNull      = "!!null"
	tagBool      = "!!bool"
	tagInt       = "!!int"
	tagFloat     = "!!float"
	tagStr       = "!!str"
	tagTimestamp = "!!timestamp"
	tagBinary    = "!!binary"
	tagSeq       = "!!seq"
	tagMap       = "!!map"
	tagMerge     = "!!merge"
)

// Value is an immutable semi-structured value: null, bool, number, string,
// sequence or mapping. The zero Value is null.
type Value struct {
	kind Kind
	// tag is the YAML short tag the scalar resolved to; empty means the
	// default tag for kind.
	tag  string
	b    bool
	text string // number text or string contents
	seq  []Value
	m    map[string]Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool wraps b.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps an integer number.
func Int(i int64) Value {
	return Value{kind: KindNumber, tag: tagInt, text: strconv.FormatInt(i, 10)}
}

// Float wraps a floating point number. Infinities and NaN use the YAML
// spellings .inf, -.inf and .nan.
func Float(f float64) Value {
	var s string
	switch {
	case math.IsInf(f, 1):
		s = ".inf"
	case math.IsInf(f, -1):
		s = "-.inf"
	case math.IsNaN(f):
		s = ".nan"
	default:
		s = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return Value{kind: KindNumber, tag: tagFloat, text: s}
}

// String wraps s.
func String(s string) Value { return Value{kind: KindString, tag: tagStr, text: s} }

// Sequence wraps a copy of vs.
func Sequence(vs ...Value) Value {
	out := make([]Value, len(vs))
	copy(out, vs)
	return Value{kind: KindSequence, seq: out}
}

// Mapping wraps a copy of m.
func Mapping(m map[string]Value) Value {
	out := make(map[string]Value, len(m))
	for k, v := range m {
		out[k] = v
	}
	return Value{kind: KindMapping, m: out}
}

// number builds a number from its textual form, classifying it as an
// integer when it parses as int64.
func number(text string) Value {
	if _, err := strconv.ParseInt(text, 0, 64); err == nil {
		return Value{kind: KindNumber, tag: tagInt, text: text}
	}
	return Value{kind: KindNumber, tag: tagFloat, text: text}
}

func (v Value) Kind() Kind { return v.kind }

// IsScalar reports whether v is null, bool, number or string.
func (v Value) IsScalar() bool { return v.kind != KindSequence && v.kind != KindMapping }

// IsInteger reports whether v is a number that resolved as an integer.
func (v Value) IsInteger() bool { return v.kind == KindNumber && v.tag == tagInt }

func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsInt64 returns the integer held by v. Floats are not converted.
func (v Value) AsInt64() (int64, bool) {
	if !v.IsInteger() {
		return 0, false
	}
	i, err := strconv.ParseInt(strings.ReplaceAll(v.text, "_", ""), 0, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// AsFloat64 returns v as a float64. Integers are converted.
func (v Value) AsFloat64() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	if i, ok := v.AsInt64(); ok {
		return float64(i), true
	}
	switch strings.ToLower(strings.TrimPrefix(v.text, "+")) {
	case ".inf":
		return math.Inf(1), true
	case "-.inf":
		return math.Inf(-1), true
	case ".nan":
		return math.NaN(), true
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(v.text, "_", ""), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.text, true
}

// Text returns the source text of a number or string; empty otherwise.
func (v Value) Text() string {
	if v.kind == KindNumber || v.kind == KindString {
		return v.text
	}
	return ""
}

// Len returns the number of elements of a sequence or entries of a mapping.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.seq)
	case KindMapping:
		return len(v.m)
	default:
		return 0
	}
}

// Index returns the i-th element of a sequence.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindSequence || i < 0 || i >= len(v.seq) {
		return Value{}, false
	}
	return v.seq[i], true
}

// Elements returns a copy of the elements of a sequence, nil otherwise.
func (v Value) Elements() []Value {
	if v.kind != KindSequence {
		return nil
	}
	out := make([]Value, len(v.seq))
	copy(out, v.seq)
	return out
}

// Lookup returns the entry stored under key in a mapping.
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != KindMapping {
		return Value{}, false
	}
	e, ok := v.m[key]
	return e, ok
}

// Keys returns the sorted keys of a mapping.
func (v Value) Keys() []string {
	if v.kind != KindMapping {
		return nil
	}
	return sortedKeys(v.m)
}

// Entries returns a copy of the entries of a mapping, nil otherwise.
func (v Value) Entries() map[string]Value {
	if v.kind != KindMapping {
		return nil
	}
	out := make(map[string]Value, len(v.m))
	for k, e := range v.m {
		out[k] = e
	}
	return out
}

// containsMapping reports whether a mapping is reachable from v, v included.
func (v Value) containsMapping() bool {
	switch v.kind {
	case KindMapping:
		return true
	case KindSequence:
		for _, e := range v.seq {
			if e.containsMapping() {
				return true
			}
		}
	}
	return false
}

func sortedKeys(m map[string]Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
