package yang

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	j "github.com/goccy/go-json"
)

// ValueFromJSON decodes exactly one JSON value from r. Duplicate object keys
// cause a *DuplicateKeyError; trailing data is rejected.
func ValueFromJSON(r io.Reader) (Value, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, errors.New("json: empty document")
		}
		return Value{}, err
	}
	v, err := jsonValue(dec, tok)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return Value{}, err
		}
		return Value{}, errors.New("json: unexpected data after top-level value")
	}
	return v, nil
}

func jsonValue(dec *j.Decoder, tok j.Token) (Value, error) {
	switch t := tok.(type) {
	case j.Delim:
		switch t {
		case '{':
			m := map[string]Value{}
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := kt.(string)
				if !ok {
					return Value{}, fmt.Errorf("json: expected object key, got %v", kt)
				}
				if _, dup := m[key]; dup {
					return Value{}, &DuplicateKeyError{Key: key}
				}
				vt, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				v, err := jsonValue(dec, vt)
				if err != nil {
					return Value{}, err
				}
				m[key] = v
			}
			if err := expectDelim(dec, '}'); err != nil {
				return Value{}, err
			}
			return Value{kind: KindMapping, m: m}, nil
		case '[':
			seq := []Value{}
			for dec.More() {
				et, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				v, err := jsonValue(dec, et)
				if err != nil {
					return Value{}, err
				}
				seq = append(seq, v)
			}
			if err := expectDelim(dec, ']'); err != nil {
				return Value{}, err
			}
			return Value{kind: KindSequence, seq: seq}, nil
		default:
			return Value{}, fmt.Errorf("json: unexpected delimiter %q", rune(t))
		}
	case string:
		return String(t), nil
	case j.Number:
		return number(t.String()), nil
	case float64:
		// go-json may hand out float64 tokens despite UseNumber
		return number(strconv.FormatFloat(t, 'g', -1, 64)), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("json: unexpected token %T", tok)
	}
}

func expectDelim(dec *j.Decoder, want j.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(j.Delim); !ok || d != want {
		return fmt.Errorf("json: expected %q, got %v", rune(want), tok)
	}
	return nil
}

// Any converts v into plain Go values: nil, bool, int64, float64, string,
// []any and map[string]any. Numbers that do not fit either numeric type
// stay as their source text.
func (v Value) Any() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		if i, ok := v.AsInt64(); ok {
			return i
		}
		if f, ok := v.AsFloat64(); ok {
			return f
		}
		return v.text
	case KindString:
		return v.text
	case KindSequence:
		out := make([]any, len(v.seq))
		for i, e := range v.seq {
			out[i] = e.Any()
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(v.m))
		for k, e := range v.m {
			out[k] = e.Any()
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) { return j.Marshal(v.Any()) }

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(b []byte) error {
	out, err := ValueFromJSON(bytes.NewReader(b))
	if err != nil {
		return err
	}
	*v = out
	return nil
}
