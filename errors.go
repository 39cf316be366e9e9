package yang

import (
	"errors"
	"fmt"
	"strings"
)

// Validation codes.
const (
	// CodeMappingProperty: a property value is itself a mapping.
	CodeMappingProperty = "mapping_property"
	// CodeMappingInSequence: a sequence element is (or contains) a mapping.
	CodeMappingInSequence = "mapping_in_sequence"
)

// ErrorInfo is a single validation finding on one property of a record.
type ErrorInfo struct {
	Field string // property key
	// Index is the zero-based position of the offending sequence element,
	// -1 when the property value itself is the offense.
	Index   int
	Path    string // JSON Pointer (for example: /Npc/0).
	Code    string
	Message string
}

// HasIndex reports whether the finding points into a sequence element.
func (e ErrorInfo) HasIndex() bool { return e.Index >= 0 }

func (e ErrorInfo) String() string {
	return fmt.Sprintf("%s at %s: %s", e.Code, e.Path, e.Message)
}

// ErrorInfos is the complete set of findings of one Validate call. It
// implements error.
type ErrorInfos []ErrorInfo

// Error summarizes the first few findings.
func (es ErrorInfos) Error() string {
	if len(es) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(es)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", es[i].Code, es[i].Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Fields returns the property keys in finding order.
func (es ErrorInfos) Fields() []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.Field)
	}
	return out
}

// AsErrorInfos extracts ErrorInfos from an error using errors.As internally.
func AsErrorInfos(err error) (ErrorInfos, bool) {
	if err == nil {
		return nil, false
	}
	var es ErrorInfos
	if errors.As(err, &es) {
		return es, true
	}
	return nil, false
}

// ErrExcessiveAliasing reports a YAML document whose aliases expand far
// beyond the size of the document itself.
var ErrExcessiveAliasing = errors.New("yaml: document contains excessive aliasing")

// LoadErrorKind classifies a LoadError.
type LoadErrorKind int

const (
	// LoadIO: the collection file could not be opened or read.
	LoadIO LoadErrorKind = iota + 1
	// LoadParse: the document could not be parsed into records.
	LoadParse
)

func (k LoadErrorKind) String() string {
	switch k {
	case LoadIO:
		return "io"
	case LoadParse:
		return "parse"
	default:
		return "unknown"
	}
}

// Sentinels matched by LoadError through errors.Is.
var (
	ErrIO    = errors.New("yang: io error")
	ErrParse = errors.New("yang: parse error")
)

// LoadError reports the failure of loading one collection.
type LoadError struct {
	Kind       LoadErrorKind
	Collection string
	Path       string
	Err        error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("yang: load %q (%s): %s error: %v", e.Collection, e.Path, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is matches ErrIO and ErrParse against the error kind.
func (e *LoadError) Is(target error) bool {
	switch target {
	case ErrIO:
		return e.Kind == LoadIO
	case ErrParse:
		return e.Kind == LoadParse
	}
	return false
}

// DuplicateKeyError reports a duplicate key found in a mapping with both the
// first occurrence position and the duplicate occurrence position. Positions
// are 0 when the document format does not track them.
type DuplicateKeyError struct {
	Key       string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("duplicate key %q", e.Key)
	}
	return fmt.Sprintf("duplicate key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// RecordError reports a document entry that does not have the shape of a
// record. Index is the entry position in the document, -1 when unknown.
type RecordError struct {
	Index   int
	Field   string
	Message string
}

func (e *RecordError) Error() string {
	b := &strings.Builder{}
	b.WriteString("record")
	if e.Index >= 0 {
		fmt.Fprintf(b, " %d", e.Index)
	}
	if e.Field != "" {
		fmt.Fprintf(b, ": %s", e.Field)
	}
	fmt.Fprintf(b, ": %s", e.Message)
	return b.String()
}
