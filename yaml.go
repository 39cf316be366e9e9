package yang

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValueFromNode converts a parsed YAML node into a Value. Aliases are
// resolved and merge keys (<<) applied, with explicit keys taking
// precedence. Duplicate keys cause a *DuplicateKeyError. Documents whose
// alias expansion dwarfs their own size fail with ErrExcessiveAliasing.
func ValueFromNode(n *yaml.Node) (Value, error) {
	c := &nodeConverter{active: map[*yaml.Node]bool{}}
	return c.convert(n)
}

type nodeConverter struct {
	// active holds the alias targets currently being expanded.
	active map[*yaml.Node]bool
	// aliasDepth is the number of aliases enclosing the current node.
	aliasDepth int
	// decoded counts every converted node, aliased counts those reached
	// through an alias.
	decoded int
	aliased int
}

// Same thresholds as yaml.v3 uses when decoding into Go values.
const (
	aliasRatioRangeLow  = 400000
	aliasRatioRangeHigh = 4000000
	aliasRatioRange     = float64(aliasRatioRangeHigh - aliasRatioRangeLow)
)

func allowedAliasRatio(decoded int) float64 {
	switch {
	case decoded <= aliasRatioRangeLow:
		return 0.99
	case decoded >= aliasRatioRangeHigh:
		return 0.10
	default:
		return 0.99 - 0.89*(float64(decoded-aliasRatioRangeLow)/aliasRatioRange)
	}
}

func (c *nodeConverter) count() error {
	c.decoded++
	if c.aliasDepth > 0 {
		c.aliased++
	}
	if c.aliased > 100 && c.decoded > 1000 && float64(c.aliased)/float64(c.decoded) > allowedAliasRatio(c.decoded) {
		return ErrExcessiveAliasing
	}
	return nil
}

func (c *nodeConverter) convert(n *yaml.Node) (Value, error) {
	if n == nil {
		return Null(), nil
	}
	if err := c.count(); err != nil {
		return Value{}, err
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return c.convert(n.Content[0])
	case yaml.AliasNode:
		if c.active[n.Alias] {
			return Value{}, fmt.Errorf("yaml: recursive alias *%s at %d:%d", n.Value, n.Line, n.Column)
		}
		c.active[n.Alias] = true
		c.aliasDepth++
		defer func() {
			delete(c.active, n.Alias)
			c.aliasDepth--
		}()
		return c.convert(n.Alias)
	case yaml.MappingNode:
		return c.mapping(n)
	case yaml.SequenceNode:
		seq := make([]Value, 0, len(n.Content))
		for _, e := range n.Content {
			v, err := c.convert(e)
			if err != nil {
				return Value{}, err
			}
			seq = append(seq, v)
		}
		return Value{kind: KindSequence, seq: seq}, nil
	case yaml.ScalarNode:
		return scalarFromNode(n), nil
	default:
		return Null(), nil
	}
}

func (c *nodeConverter) mapping(n *yaml.Node) (Value, error) {
	m := make(map[string]Value, len(n.Content)/2)
	first := make(map[string][2]int, len(n.Content)/2)
	var merges []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		v := n.Content[i+1]
		if k.Kind == yaml.ScalarNode && k.ShortTag() == tagMerge {
			merges = append(merges, v)
			continue
		}
		key, err := keyString(k)
		if err != nil {
			return Value{}, err
		}
		if pos, dup := first[key]; dup {
			return Value{}, &DuplicateKeyError{Key: key, FirstLine: pos[0], FirstCol: pos[1], Line: k.Line, Col: k.Column}
		}
		first[key] = [2]int{k.Line, k.Column}
		val, err := c.convert(v)
		if err != nil {
			return Value{}, err
		}
		m[key] = val
	}
	for _, mn := range merges {
		if err := c.merge(m, mn); err != nil {
			return Value{}, err
		}
	}
	return Value{kind: KindMapping, m: m}, nil
}

// merge copies the entries of a merge source into dst without overriding
// keys already present. The source is a mapping or a sequence of mappings;
// earlier mappings of a sequence win over later ones.
func (c *nodeConverter) merge(dst map[string]Value, src *yaml.Node) error {
	v, err := c.convert(src)
	if err != nil {
		return err
	}
	var sources []Value
	switch v.kind {
	case KindMapping:
		sources = []Value{v}
	case KindSequence:
		for _, e := range v.seq {
			if e.kind != KindMapping {
				return fmt.Errorf("yaml: merge sequence at %d:%d must contain only mappings", src.Line, src.Column)
			}
		}
		sources = v.seq
	default:
		return fmt.Errorf("yaml: merge value at %d:%d must be a mapping or a sequence of mappings", src.Line, src.Column)
	}
	for _, s := range sources {
		for k, e := range s.m {
			if _, ok := dst[k]; !ok {
				dst[k] = e
			}
		}
	}
	return nil
}

func keyString(k *yaml.Node) (string, error) {
	for k.Kind == yaml.AliasNode && k.Alias != nil {
		k = k.Alias
	}
	if k.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("yaml: unsupported non-scalar mapping key at %d:%d", k.Line, k.Column)
	}
	return k.Value, nil
}

func scalarFromNode(n *yaml.Node) Value {
	switch tag := n.ShortTag(); tag {
	case tagNull:
		return Null()
	case tagBool:
		switch strings.ToLower(n.Value) {
		case "true", "yes", "on", "y":
			return Bool(true)
		case "false", "no", "off", "n":
			return Bool(false)
		}
		return String(n.Value)
	case tagInt:
		return Value{kind: KindNumber, tag: tagInt, text: n.Value}
	case tagFloat:
		return Value{kind: KindNumber, tag: tagFloat, text: n.Value}
	case tagTimestamp, tagBinary:
		return Value{kind: KindString, tag: tag, text: n.Value}
	default:
		// custom tags fall back to the raw string
		return String(n.Value)
	}
}

// Node converts v into a YAML node. Mapping keys are emitted in sorted
// order.
func (v Value) Node() *yaml.Node {
	switch v.kind {
	case KindBool:
		s := "false"
		if v.b {
			s = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagBool, Value: s}
	case KindNumber, KindString:
		tag := v.tag
		if tag == "" {
			tag = tagStr
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.text}
	case KindSequence:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: tagSeq, Content: make([]*yaml.Node, 0, len(v.seq))}
		for _, e := range v.seq {
			n.Content = append(n.Content, e.Node())
		}
		return n
	case KindMapping:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: tagMap, Content: make([]*yaml.Node, 0, 2*len(v.m))}
		for _, k := range sortedKeys(v.m) {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: tagStr, Value: k},
				v.m[k].Node())
		}
		return n
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagNull, Value: "null"}
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value) UnmarshalYAML(n *yaml.Node) error {
	out, err := ValueFromNode(n)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) { return v.Node(), nil }
