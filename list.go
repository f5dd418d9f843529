package decexpr

import (
	"io"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// asList gets the elements of v if v is a slice or array. Strings are not
// lists.
func asList(v interface{}) ([]interface{}, bool) {
	switch v := v.(type) {
	case []interface{}:
		return v, true
	case string, nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		l := make([]interface{}, rv.Len())
		for i := range l {
			l[i] = rv.Index(i).Interface()
		}
		return l, true
	default:
		return nil, false
	}
}

// render writes v as text, with lists in brackets.
func render(v interface{}) string {
	var b strings.Builder
	renderTo(&b, v)
	return b.String()
}

// renderList writes the elements of l separated by spaces, with nested lists
// in brackets.
func renderList(l []interface{}) string {
	var b strings.Builder
	renderElems(&b, l)
	return b.String()
}

func renderTo(b *strings.Builder, v interface{}) {
	l, ok := asList(v)
	if !ok {
		b.WriteString(numtext(v))
		return
	}
	b.WriteByte('[')
	renderElems(b, l)
	b.WriteByte(']')
}

func renderElems(b *strings.Builder, l []interface{}) {
	for i, v := range l {
		if i > 0 {
			b.WriteByte(' ')
		}
		renderTo(b, v)
	}
}

// DecodeLists reads a stream of YAML documents, each of which is a sequence
// giving an expression in list form, e.g. JSON like ["+", 0.1, ["*", 2, 3]].
// Scalars are kept as their source text, so 0.10 keeps its scale. Operators
// must be quoted, since * and - are YAML indicators.
func DecodeLists(r io.Reader) ([][]interface{}, error) {
	dec := yaml.NewDecoder(r)
	var lists [][]interface{}
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return lists, nil
			}
			return lists, errors.Wrap(err, "decoding list")
		}
		if len(doc.Content) == 0 {
			continue
		}
		v, err := nodeValue(doc.Content[0])
		if err != nil {
			return lists, err
		}
		l, ok := v.([]interface{})
		if !ok {
			return lists, errors.Errorf("line %d: expression must be a sequence, not %q", doc.Content[0].Line, v)
		}
		lists = append(lists, l)
	}
}

// nodeValue converts a YAML node to a string or a list.
func nodeValue(n *yaml.Node) (interface{}, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return n.Value, nil
	case yaml.SequenceNode:
		l := make([]interface{}, len(n.Content))
		for i, c := range n.Content {
			v, err := nodeValue(c)
			if err != nil {
				return nil, err
			}
			l[i] = v
		}
		return l, nil
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, errors.Errorf("line %d: empty document", n.Line)
		}
		return nodeValue(n.Content[0])
	default:
		return nil, errors.Errorf("line %d: unexpected mapping in expression", n.Line)
	}
}
