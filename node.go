package htmlify

import "fmt"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindEmpty     Kind = iota // absent node, serializes to nothing
	KindScalar                // plain text/number leaf
	KindElement               // markup node with a tag name
	KindComponent             // higher-level widget requiring normalization
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindScalar:
		return "Scalar"
	case KindElement:
		return "Element"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// Prop is a single attribute entry.
type Prop struct {
	Key   string
	Value any
}

// Props holds attributes in insertion order. Serialization emits
// attributes in the order they were set, so Props is a slice rather
// than a map.
type Props []Prop

// Set adds a prop or replaces the value of an existing key in place.
func (p *Props) Set(key string, value any) {
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Value = value
			return
		}
	}
	*p = append(*p, Prop{Key: key, Value: value})
}

// Get returns the value for key and whether it was present.
func (p Props) Get(key string) (any, bool) {
	for _, entry := range p {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (p Props) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// clone returns an independent copy of the props.
func (p Props) clone() Props {
	if p == nil {
		return nil
	}
	out := make(Props, len(p))
	copy(out, p)
	return out
}

// StyleDecl is a single CSS declaration.
type StyleDecl struct {
	Key   string
	Value any
}

// Style holds CSS declarations in insertion order. It serializes to a
// single semicolon-joined attribute string ("color:red; height:10px").
type Style []StyleDecl

// Set adds a declaration or replaces the value of an existing key.
func (s *Style) Set(key string, value any) {
	for i := range *s {
		if (*s)[i].Key == key {
			(*s)[i].Value = value
			return
		}
	}
	*s = append(*s, StyleDecl{Key: key, Value: value})
}

// Get returns the value for key and whether it was present.
func (s Style) Get(key string) (any, bool) {
	for _, decl := range s {
		if decl.Key == key {
			return decl.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (s Style) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// clone returns an independent copy of the style.
func (s Style) clone() Style {
	if s == nil {
		return nil
	}
	out := make(Style, len(s))
	copy(out, s)
	return out
}

// String renders the declarations as "k1:v1; k2:v2" preserving order.
func (s Style) String() string {
	if len(s) == 0 {
		return ""
	}
	out := ""
	for i, decl := range s {
		if i > 0 {
			out += "; "
		}
		out += decl.Key + ":" + coerceString(decl.Value)
	}
	return out
}

// Node is a tagged value in the component tree. Depending on Kind it is
// a markup element (Tag, Props, Style, Children), an opaque component
// (Namespace, Type, Props, Style, Children), or a scalar leaf (Value).
// Nodes are read-only snapshots of the live application tree; the
// serializer never mutates them.
type Node struct {
	Kind      Kind
	Tag       string // element tag name, e.g. "div"
	Namespace string // component namespace, e.g. "core_components"
	Type      string // component type name, e.g. "Graph"
	Props     Props
	Style     Style
	Children  []*Node
	Value     any // scalar payload
}

// Element creates a markup node with the given tag and children.
func Element(tag string, children ...*Node) *Node {
	return &Node{Kind: KindElement, Tag: tag, Children: children}
}

// Component creates a widget node with the given namespace and type.
func Component(namespace, typ string, children ...*Node) *Node {
	return &Node{Kind: KindComponent, Namespace: namespace, Type: typ, Children: children}
}

// Scalar creates a leaf node from a plain value (string, number, bool).
func Scalar(value any) *Node {
	return &Node{Kind: KindScalar, Value: value}
}

// Text creates a text leaf node.
func Text(s string) *Node {
	return Scalar(s)
}

// Set sets a prop and returns the node for chaining.
func (n *Node) Set(key string, value any) *Node {
	n.Props.Set(key, value)
	return n
}

// SetStyle sets a style declaration and returns the node for chaining.
func (n *Node) SetStyle(key string, value any) *Node {
	n.Style.Set(key, value)
	return n
}

// childText returns the text content of a node whose children carry a
// single scalar (the shape markdown components use).
func (n *Node) childText() string {
	if len(n.Children) == 1 && n.Children[0] != nil && n.Children[0].Kind == KindScalar {
		return coerceString(n.Children[0].Value)
	}
	return ""
}

// coerceString converts a scalar prop or leaf value to its text form.
// Exotic values fall back to fmt formatting.
func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(v)
	}
}
