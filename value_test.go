package yang_test

import (
	"math"
	"testing"

	yang "github.com/PudgeKim/yang"
)

func TestValue_Constructors(t *testing.T) {
	if yang.Null().Kind() != yang.KindNull || (yang.Value{}).Kind() != yang.KindNull {
		t.Fatalf("zero value must be null")
	}
	if i, ok := yang.Int(-7).AsInt64(); !ok || i != -7 {
		t.Fatalf("Int: %v %v", i, ok)
	}
	if _, ok := yang.Float(1.5).AsInt64(); ok {
		t.Fatalf("floats must not convert to int64")
	}
	if f, ok := yang.Int(3).AsFloat64(); !ok || f != 3 {
		t.Fatalf("ints convert to float64: %v %v", f, ok)
	}
	if f, _ := yang.Float(math.Inf(-1)).AsFloat64(); !math.IsInf(f, -1) {
		t.Fatalf("-inf: %v", f)
	}
	if f, _ := yang.Float(math.NaN()).AsFloat64(); !math.IsNaN(f) {
		t.Fatalf("nan: %v", f)
	}
	if _, ok := yang.String("1").AsInt64(); ok {
		t.Fatalf("strings are not numbers")
	}
	if !yang.String("x").IsScalar() || yang.Sequence().IsScalar() || yang.Mapping(nil).IsScalar() {
		t.Fatalf("IsScalar mismatch")
	}
}

func TestValue_CopiesInputs(t *testing.T) {
	elems := []yang.Value{yang.Int(1)}
	seq := yang.Sequence(elems...)
	elems[0] = yang.Int(2)
	if e, _ := seq.Index(0); e.Text() != "1" {
		t.Fatalf("sequence shares caller slice")
	}
	out := seq.Elements()
	out[0] = yang.Int(3)
	if e, _ := seq.Index(0); e.Text() != "1" {
		t.Fatalf("Elements exposes internal slice")
	}

	m := map[string]yang.Value{"a": yang.Int(1)}
	mv := yang.Mapping(m)
	m["b"] = yang.Int(2)
	if mv.Len() != 1 {
		t.Fatalf("mapping shares caller map")
	}
	if _, ok := mv.Lookup("b"); ok {
		t.Fatalf("mapping shares caller map")
	}
}

func TestValue_Accessors(t *testing.T) {
	mv := yang.Mapping(map[string]yang.Value{"b": yang.Int(1), "a": yang.Bool(false)})
	if k := mv.Keys(); len(k) != 2 || k[0] != "a" {
		t.Fatalf("Keys must be sorted: %v", k)
	}
	if _, ok := mv.Index(0); ok {
		t.Fatalf("Index on mapping")
	}
	if _, ok := yang.Sequence(yang.Int(1)).Index(1); ok {
		t.Fatalf("Index out of range")
	}
	if yang.Int(1).Keys() != nil || yang.Int(1).Entries() != nil || yang.Int(1).Elements() != nil {
		t.Fatalf("container accessors on scalar must return nil")
	}
	if yang.KindMapping.String() != "mapping" {
		t.Fatalf("Kind.String: %s", yang.KindMapping)
	}
}

func TestValue_Any(t *testing.T) {
	v := yang.Sequence(yang.Int(1), yang.Float(0.5), yang.String("s"), yang.Null(),
		yang.Mapping(map[string]yang.Value{"k": yang.Bool(true)}))
	got, ok := v.Any().([]any)
	if !ok || len(got) != 5 {
		t.Fatalf("unexpected %#v", v.Any())
	}
	if got[0] != int64(1) || got[1] != 0.5 || got[2] != "s" || got[3] != nil {
		t.Fatalf("unexpected scalars %#v", got)
	}
	if m, ok := got[4].(map[string]any); !ok || m["k"] != true {
		t.Fatalf("unexpected mapping %#v", got[4])
	}
}
