package yang

import (
	"github.com/PudgeKim/yang/i18n"
)

// Document keys of the required record fields.
const (
	KeyID   = "Id"
	KeyName = "Name"
)

// Record is one entry of a collection: an identifier, a name and an open
// property bag. Records are immutable.
type Record struct {
	id    int64
	name  string
	props map[string]Value
}

// NewRecord builds a record from a copy of props. The KeyID and KeyName
// entries are ignored if present.
func NewRecord(id int64, name string, props map[string]Value) *Record {
	out := make(map[string]Value, len(props))
	for k, v := range props {
		if k == KeyID || k == KeyName {
			continue
		}
		out[k] = v
	}
	return &Record{id: id, name: name, props: out}
}

// RecordFromValue builds a record from a mapping holding an integer Id, a
// string Name and any number of additional properties.
func RecordFromValue(v Value) (*Record, error) {
	if v.kind != KindMapping {
		return nil, &RecordError{Index: -1, Message: "expected a mapping, got " + v.kind.String()}
	}
	idv, ok := v.m[KeyID]
	if !ok {
		return nil, &RecordError{Index: -1, Field: KeyID, Message: "missing field"}
	}
	id, ok := idv.AsInt64()
	if !ok {
		return nil, &RecordError{Index: -1, Field: KeyID, Message: "expected a 64-bit integer, got " + idv.kind.String()}
	}
	nv, ok := v.m[KeyName]
	if !ok {
		return nil, &RecordError{Index: -1, Field: KeyName, Message: "missing field"}
	}
	name, ok := nv.AsString()
	if !ok {
		return nil, &RecordError{Index: -1, Field: KeyName, Message: "expected a string, got " + nv.kind.String()}
	}
	return NewRecord(id, name, v.m), nil
}

func (r *Record) ID() int64    { return r.id }
func (r *Record) Name() string { return r.name }

// Property returns the raw value stored under key.
func (r *Record) Property(key string) (Value, bool) {
	v, ok := r.props[key]
	return v, ok
}

// Properties returns a copy of the property bag.
func (r *Record) Properties() map[string]Value {
	out := make(map[string]Value, len(r.props))
	for k, v := range r.props {
		out[k] = v
	}
	return out
}

// Keys returns the sorted property keys.
func (r *Record) Keys() []string { return sortedKeys(r.props) }

// Value returns the record as a mapping, Id and Name included.
func (r *Record) Value() Value {
	m := r.Properties()
	m[KeyID] = Int(r.id)
	m[KeyName] = String(r.name)
	return Value{kind: KindMapping, m: m}
}

// Validate checks that no property holds a mapping, directly or inside a
// sequence. It reports at most one finding per property and checks every
// property; for sequences the finding points at the first offending
// element. Findings are ordered by property key. The returned error is nil
// or ErrorInfos.
func (r *Record) Validate() error {
	var es ErrorInfos
	for _, key := range r.Keys() {
		if e, bad := validateProperty(key, r.props[key]); bad {
			es = append(es, e)
		}
	}
	if len(es) == 0 {
		return nil
	}
	return es
}

func validateProperty(key string, v Value) (ErrorInfo, bool) {
	p := Root().Field(key)
	switch v.kind {
	case KindMapping:
		return ErrorInfo{
			Field:   key,
			Index:   -1,
			Path:    p.Pointer(),
			Code:    CodeMappingProperty,
			Message: i18n.T(CodeMappingProperty, map[string]string{"field": key}),
		}, true
	case KindSequence:
		for i, e := range v.seq {
			if !e.containsMapping() {
				continue
			}
			return ErrorInfo{
				Field:   key,
				Index:   i,
				Path:    p.Index(i).Pointer(),
				Code:    CodeMappingInSequence,
				Message: i18n.T(CodeMappingInSequence, map[string]string{"field": key}),
			}, true
		}
	}
	return ErrorInfo{}, false
}
