package yang

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format decodes one collection document into its root Value.
type Format interface {
	Name() string
	// Extension is the file extension without the leading dot.
	Extension() string
	Decode(r io.Reader) (Value, error)
}

var (
	// YAML reads the first document of a YAML stream.
	YAML Format = yamlFormat{}
	// JSON reads a single JSON value.
	JSON Format = jsonFormat{}
)

// FormatByName resolves "yaml", "yml" or "json" (case-insensitive).
func FormatByName(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	default:
		return nil, fmt.Errorf("yang: unknown format %q", name)
	}
}

type yamlFormat struct{}

func (yamlFormat) Name() string      { return "yaml" }
func (yamlFormat) Extension() string { return "yaml" }

func (yamlFormat) Decode(r io.Reader) (Value, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, errors.New("yaml: empty document")
		}
		return Value{}, err
	}
	return ValueFromNode(&root)
}

type jsonFormat struct{}

func (jsonFormat) Name() string                      { return "json" }
func (jsonFormat) Extension() string                 { return "json" }
func (jsonFormat) Decode(r io.Reader) (Value, error) { return ValueFromJSON(r) }

// DecodeRecords decodes a document holding a sequence of records.
// Malformed entries fail with a *RecordError carrying the entry index.
func DecodeRecords(f Format, r io.Reader) ([]*Record, error) {
	root, err := f.Decode(r)
	if err != nil {
		return nil, err
	}
	return RecordsFromValue(root)
}

// RecordsFromValue converts a sequence of mappings into records.
func RecordsFromValue(root Value) ([]*Record, error) {
	if root.kind != KindSequence {
		return nil, &RecordError{Index: -1, Message: "document root must be a sequence of records, got " + root.kind.String()}
	}
	out := make([]*Record, 0, len(root.seq))
	for i, e := range root.seq {
		rec, err := RecordFromValue(e)
		if err != nil {
			var re *RecordError
			if errors.As(err, &re) {
				re.Index = i
			}
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
