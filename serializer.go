package htmlify

import (
	"context"
	"strings"
)

// linkComponentType is the navigation-link widget that is reinterpreted
// as a plain anchor tag instead of being normalized into a container.
const linkComponentType = "Link"

// markupSerializer turns a node tree into markup text.
type markupSerializer interface {
	Serialize(ctx context.Context, node *Node) string
}

// treeSerializer walks the tree recursively, normalizing component
// nodes on the way down so it only ever emits plain markup.
type treeSerializer struct {
	normalizer componentNormalizer
}

// Serialize renders a node (or scalar, or nothing) as markup.
// Absent nodes produce an empty string, scalars their textual form.
func (t *treeSerializer) Serialize(ctx context.Context, node *Node) string {
	if node == nil || node.Kind == KindEmpty {
		return ""
	}
	if node.Kind == KindScalar {
		return coerceString(node.Value)
	}

	n := node
	if n.Kind == KindComponent {
		if n.Type == linkComponentType {
			n = asAnchor(n)
		} else {
			n = t.normalizer.Normalize(ctx, n)
		}
	}

	tag := strings.ToLower(n.Tag)

	attrib := buildAttribString(n)
	if attrib != "" {
		attrib = " " + attrib
	}

	children := t.serializeChildren(ctx, tag, n.Children)

	closing := ""
	if !voidTags[tag] {
		closing = "\n</" + tag + ">"
	}

	return "<" + tag + attrib + ">" + children + closing
}

// asAnchor reinterprets a navigation-link component as an anchor
// element, keeping its props, style, and children intact.
func asAnchor(n *Node) *Node {
	return &Node{
		Kind:     KindElement,
		Tag:      "a",
		Props:    n.Props,
		Style:    n.Style,
		Children: n.Children,
	}
}

// buildAttribString assembles the attribute portion of an opening tag:
// identity/value attributes first, then the style attribute, then bare
// boolean attributes. Empty groups are elided.
func buildAttribString(n *Node) string {
	var attrs []string
	for _, p := range n.Props {
		key := strings.ToLower(translateAttrKey(p.Key))
		if key == "style" || key == "children" || boolAttrs[key] {
			continue
		}
		attrs = append(attrs, key+`="`+translateAttrValue(p.Value)+`"`)
	}
	attribStr := strings.Join(attrs, " ")

	styleStr := ""
	if n.Style != nil {
		styleStr = `style="` + n.Style.String() + `"`
	}

	var bools []string
	for _, p := range n.Props {
		key := strings.ToLower(translateAttrKey(p.Key))
		if boolAttrs[key] && isTruthy(p.Value) {
			bools = append(bools, key)
		}
	}
	boolStr := strings.Join(bools, " ")

	return strings.TrimSpace(strings.Join([]string{attribStr, styleStr, boolStr}, " "))
}

// serializeChildren renders the child list. A single child is emitted
// inline; multiple children are newline-joined, each prefixed with an
// indent equal to its zero-based position (fixed two spaces inside
// list-container tags). Only the first line of a child is indented.
func (t *treeSerializer) serializeChildren(ctx context.Context, parentTag string, children []*Node) string {
	switch len(children) {
	case 0:
		return ""
	case 1:
		return t.Serialize(ctx, children[0])
	}

	parts := make([]string, len(children))
	for i, child := range children {
		indent := strings.Repeat(" ", i)
		if listTags[parentTag] {
			indent = "  "
		}
		parts[i] = indent + t.Serialize(ctx, child)
	}
	return "\n" + strings.Join(parts, "\n")
}
