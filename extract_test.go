package yang_test

import (
	"testing"
	"time"

	yang "github.com/PudgeKim/yang"
)

type npc struct {
	Name string `yaml:"Name"`
	Hp   int    `yaml:"Hp"`
}

func TestGet_TypedValues(t *testing.T) {
	rs := mustRecords(t, `
- Id: 1
  Name: Goblin
  Hp: 100
  Speed: 1.25
  Boss: true
  Title: "12"
  Tags: [green, small]
  Born: 2001-12-14
  Leader: {Name: Hob, Hp: 300}
`)
	r := rs[0]
	if hp, ok := yang.Get[int](r, "Hp"); !ok || hp != 100 {
		t.Fatalf("Hp: %v %v", hp, ok)
	}
	if hp, ok := yang.Get[int64](r, "Hp"); !ok || hp != 100 {
		t.Fatalf("Hp as int64: %v %v", hp, ok)
	}
	if sp, ok := yang.Get[float64](r, "Speed"); !ok || sp != 1.25 {
		t.Fatalf("Speed: %v %v", sp, ok)
	}
	if b, ok := yang.Get[bool](r, "Boss"); !ok || !b {
		t.Fatalf("Boss: %v %v", b, ok)
	}
	if s, ok := yang.Get[string](r, "Title"); !ok || s != "12" {
		t.Fatalf("Title: %v %v", s, ok)
	}
	if tags, ok := yang.Get[[]string](r, "Tags"); !ok || len(tags) != 2 || tags[1] != "small" {
		t.Fatalf("Tags: %v %v", tags, ok)
	}
	if born, ok := yang.Get[time.Time](r, "Born"); !ok || born.Year() != 2001 || born.Month() != time.December {
		t.Fatalf("Born: %v %v", born, ok)
	}
	if l, ok := yang.Get[npc](r, "Leader"); !ok || l.Name != "Hob" || l.Hp != 300 {
		t.Fatalf("Leader: %+v %v", l, ok)
	}
	if v, ok := yang.Get[yang.Value](r, "Leader"); !ok || v.Kind() != yang.KindMapping {
		t.Fatalf("Leader as Value: %v %v", v, ok)
	}
}

// TestGet_AbsentAndMismatchAreIndistinguishable documents the lossy
// contract: both cases return the zero value and false.
func TestGet_AbsentAndMismatchAreIndistinguishable(t *testing.T) {
	r := yang.NewRecord(1, "x", map[string]yang.Value{
		"Word": yang.String("two"),
		"Map":  yang.Mapping(map[string]yang.Value{"a": yang.Int(1)}),
	})
	for _, key := range []string{"Missing", "Word", "Map"} {
		v, ok := yang.Get[int](r, key)
		if ok || v != 0 {
			t.Fatalf("%s: expected (0,false), got (%v,%v)", key, v, ok)
		}
	}
	if got := yang.GetOr(r, "Word", 42); got != 42 {
		t.Fatalf("GetOr fallback: %d", got)
	}
	if got := yang.GetOr(r, "Word", "none"); got != "two" {
		t.Fatalf("GetOr hit: %q", got)
	}
}

func TestGetAsList_DropsFailures(t *testing.T) {
	r := yang.NewRecord(1, "x", map[string]yang.Value{
		"Mixed": yang.Sequence(
			yang.Int(1),
			yang.String("two"),
			yang.Int(3),
			yang.Mapping(map[string]yang.Value{"a": yang.Int(4)}),
			yang.Int(5),
		),
	})
	got := yang.GetAsList[int](r, "Mixed")
	want := []int{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestGetAsList_Structs(t *testing.T) {
	rs := mustRecords(t, `
- Id: 1
  Name: Camp
  Npc:
    - {Name: Goblin, Hp: 100}
    - {Name: Orc, Hp: lots}
    - {Name: Troll, Hp: 400}
`)
	npcs := yang.GetAsList[npc](rs[0], "Npc")
	if len(npcs) != 2 || npcs[0].Name != "Goblin" || npcs[1].Name != "Troll" {
		t.Fatalf("unexpected npcs %+v", npcs)
	}
}

func TestGetAsList_AbsentOrNotSequence(t *testing.T) {
	r := yang.NewRecord(1, "x", map[string]yang.Value{"Hp": yang.Int(1)})
	for _, key := range []string{"Missing", "Hp"} {
		got := yang.GetAsList[int](r, key)
		if got == nil || len(got) != 0 {
			t.Fatalf("%s: expected empty non-nil slice, got %#v", key, got)
		}
	}
}

func TestDecode_FloatIntoFloat(t *testing.T) {
	f, err := yang.Decode[float64](yang.Float(2))
	if err != nil || f != 2 {
		t.Fatalf("Decode float: %v %v", f, err)
	}
	if _, err := yang.Decode[bool](yang.String("yes please")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestGet_NullOnlyDecodesIntoNilable(t *testing.T) {
	r := yang.NewRecord(1, "x", map[string]yang.Value{"Note": yang.Null()})
	if v, ok := yang.Get[int](r, "Note"); ok || v != 0 {
		t.Fatalf("null into int: (%v,%v)", v, ok)
	}
	if _, ok := yang.Get[string](r, "Note"); ok {
		t.Fatalf("null into string must fail")
	}
	if p, ok := yang.Get[*int](r, "Note"); !ok || p != nil {
		t.Fatalf("null into *int: (%v,%v)", p, ok)
	}
	if v, ok := yang.Get[any](r, "Note"); !ok || v != nil {
		t.Fatalf("null into any: (%v,%v)", v, ok)
	}
	if v, ok := yang.Get[yang.Value](r, "Note"); !ok || v.Kind() != yang.KindNull {
		t.Fatalf("null into Value: (%v,%v)", v, ok)
	}
}

func TestGet_ScalarsDoNotBecomeStrings(t *testing.T) {
	r := yang.NewRecord(1, "x", map[string]yang.Value{
		"Hp":   yang.Int(5),
		"Boss": yang.Bool(true),
		"Tags": yang.Sequence(yang.String("a"), yang.Int(2), yang.String("c")),
	})
	if s, ok := yang.Get[string](r, "Hp"); ok {
		t.Fatalf("int into string: %q", s)
	}
	if s, ok := yang.Get[string](r, "Boss"); ok {
		t.Fatalf("bool into string: %q", s)
	}
	if tags := yang.GetAsList[string](r, "Tags"); len(tags) != 2 || tags[1] != "c" {
		t.Fatalf("unexpected tags %v", tags)
	}
}
