package htmlify

import (
	"context"
	"strings"
)

// markdownComponentType is the widget whose children are markdown text
// to be rendered rather than boxed out as a placeholder.
const markdownComponentType = "Markdown"

// componentNormalizer maps non-markup widget nodes into generic
// container nodes the serializer can emit directly.
type componentNormalizer interface {
	Normalize(ctx context.Context, node *Node) *Node
}

// normalizeConfig holds the tunables for container normalization.
type normalizeConfig struct {
	classPrefix   string
	defaultHeight string
	largeHeight   string
	largeTypes    map[string]bool
}

// containerNormalizer produces best-effort container nodes: a derived
// CSS class, copied identity props, and a default height placeholder.
// It never fails.
type containerNormalizer struct {
	cfg      normalizeConfig
	markdown markdownRenderer
}

// Normalize converts a widget node into an equivalent markup container.
// The source node is left untouched; props and styles are copied.
func (c *containerNormalizer) Normalize(ctx context.Context, node *Node) *Node {
	derived := deriveClass(c.cfg.classPrefix, node.Namespace, node.Type)

	div := Element("div")
	div.Props.Set("className", derived)

	for _, p := range node.Props {
		switch p.Key {
		case "className":
			div.Props.Set("className", coerceString(p.Value)+"-"+derived)
		case "id":
			div.Props.Set("id", p.Value)
		}
	}
	if node.Style != nil {
		div.Style = node.Style.clone()
	}

	if node.Type == markdownComponentType {
		div.Children = []*Node{Text(c.renderMarkdown(ctx, node.childText()))}
		return div
	}

	// Placeholder box: reserve vertical space so the crawler snapshot
	// roughly matches the hydrated page.
	if !div.Style.Has("height") {
		height := c.cfg.defaultHeight
		if c.cfg.largeTypes[node.Type] {
			height = c.cfg.largeHeight
		}
		div.Style.Set("height", height)
	}
	return div
}

// renderMarkdown renders widget markdown, degrading to the raw text on
// any failure rather than surfacing an error.
func (c *containerNormalizer) renderMarkdown(ctx context.Context, text string) string {
	if c.markdown == nil {
		return text
	}
	rendered, err := c.markdown.Render(ctx, text)
	if err != nil {
		return text
	}
	return rendered
}

// deriveClass joins the prefix, the namespace segments, and the type
// name into a lowercased hyphen-joined CSS class, e.g.
// "ssr-core-components-graph".
func deriveClass(prefix, namespace, typ string) string {
	parts := append([]string{prefix}, strings.Split(namespace, "_")...)
	parts = append(parts, typ)
	return strings.ToLower(strings.Join(parts, "-"))
}
