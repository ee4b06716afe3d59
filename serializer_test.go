package htmlify

import (
	"context"
	"strings"
	"testing"
)

// newTestSerializer builds a serializer whose markdown stage is raw
// passthrough, keeping expectations independent of the engine.
func newTestSerializer() markupSerializer {
	svc := New(WithMarkdownEngine(nil))
	return svc.serializer
}

func TestSerializeBasics(t *testing.T) {
	s := newTestSerializer()
	ctx := context.Background()

	tests := []struct {
		name     string
		node     *Node
		expected string
	}{
		{
			name:     "nil node",
			node:     nil,
			expected: "",
		},
		{
			name:     "empty node",
			node:     &Node{Kind: KindEmpty},
			expected: "",
		},
		{
			name:     "string scalar",
			node:     Scalar("hello"),
			expected: "hello",
		},
		{
			name:     "numeric scalar",
			node:     Scalar(42),
			expected: "42",
		},
		{
			name:     "empty container",
			node:     Element("div"),
			expected: "<div>\n</div>",
		},
		{
			name:     "tag lowercased",
			node:     Element("Div"),
			expected: "<div>\n</div>",
		},
		{
			name:     "single text child inline",
			node:     Element("h1", Text("hello, world")),
			expected: "<h1>hello, world\n</h1>",
		},
		{
			name:     "nested single children",
			node:     Element("div", Element("h1", Text("hello, world"))),
			expected: "<div><h1>hello, world\n</h1>\n</div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Serialize(ctx, tt.node)
			if got != tt.expected {
				t.Errorf("Serialize() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSerializeTextLeafAppearsVerbatim(t *testing.T) {
	s := newTestSerializer()
	tree := Element("div",
		Element("p", Text("some unique sentence")),
		Element("p", Text("another line")),
	)

	got := s.Serialize(context.Background(), tree)
	for _, text := range []string{"some unique sentence", "another line"} {
		if !strings.Contains(got, text) {
			t.Errorf("Serialize() = %q, missing text leaf %q", got, text)
		}
	}
}

func TestSerializeVoidTags(t *testing.T) {
	s := newTestSerializer()
	ctx := context.Background()

	tests := []struct {
		name     string
		node     *Node
		expected string
	}{
		{
			name:     "br has no closing tag",
			node:     Element("br"),
			expected: "<br>",
		},
		{
			name:     "img with attribute",
			node:     Element("img").Set("src", "logo.png"),
			expected: `<img src="logo.png">`,
		},
		{
			name:     "hr",
			node:     Element("hr"),
			expected: "<hr>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Serialize(ctx, tt.node)
			if got != tt.expected {
				t.Errorf("Serialize() = %q, want %q", got, tt.expected)
			}
			if strings.Contains(got, "</") {
				t.Errorf("void tag produced a closing tag: %q", got)
			}
		})
	}
}

func TestSerializeAttributes(t *testing.T) {
	s := newTestSerializer()
	ctx := context.Background()

	tests := []struct {
		name     string
		node     *Node
		expected string
	}{
		{
			name:     "className renamed to class",
			node:     Element("div").Set("className", "box"),
			expected: `<div class="box">` + "\n</div>",
		},
		{
			name:     "keys lowercased",
			node:     Element("div").Set("tabIndex", 3),
			expected: `<div tabindex="3">` + "\n</div>",
		},
		{
			name:     "boolean value canonicalized",
			node:     Element("div").Set("draggable", true),
			expected: `<div draggable="true">` + "\n</div>",
		},
		{
			name:     "insertion order preserved",
			node:     Element("a").Set("href", "/x").Set("id", "l1").Set("title", "t"),
			expected: `<a href="/x" id="l1" title="t">` + "\n</a>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Serialize(ctx, tt.node)
			if got != tt.expected {
				t.Errorf("Serialize() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSerializeBooleanAttributes(t *testing.T) {
	s := newTestSerializer()
	ctx := context.Background()

	tests := []struct {
		name     string
		node     *Node
		expected string
	}{
		{
			name:     "truthy boolean appears bare",
			node:     Element("input").Set("type", "checkbox").Set("checked", true),
			expected: `<input type="checkbox"  checked>`,
		},
		{
			name:     "falsy boolean omitted entirely",
			node:     Element("input").Set("type", "checkbox").Set("checked", false),
			expected: `<input type="checkbox">`,
		},
		{
			name:     "truthy string counts",
			node:     Element("select").Set("multiple", "yes"),
			expected: "<select multiple>\n</select>",
		},
		{
			name:     "bare attribute only",
			node:     Element("input").Set("disabled", 1),
			expected: "<input disabled>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Serialize(ctx, tt.node)
			if got != tt.expected {
				t.Errorf("Serialize() = %q, want %q", got, tt.expected)
			}
			if strings.Contains(got, `checked="`) || strings.Contains(got, `disabled="`) || strings.Contains(got, `multiple="`) {
				t.Errorf("boolean attribute rendered with a value: %q", got)
			}
		})
	}
}

func TestSerializeStyleAttribute(t *testing.T) {
	s := newTestSerializer()
	ctx := context.Background()

	node := Element("div").SetStyle("color", "red").SetStyle("height", "10px")
	got := s.Serialize(ctx, node)
	want := `<div style="color:red; height:10px">` + "\n</div>"
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestSerializeStyleOrderMatchesInsertion(t *testing.T) {
	s := newTestSerializer()
	ctx := context.Background()

	node := Element("div").
		SetStyle("z-index", 2).
		SetStyle("color", "blue").
		SetStyle("height", "1px")
	got := s.Serialize(ctx, node)
	want := `<div style="z-index:2; color:blue; height:1px">` + "\n</div>"
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestSerializeChildIndentation(t *testing.T) {
	s := newTestSerializer()
	ctx := context.Background()

	tests := []struct {
		name     string
		node     *Node
		expected string
	}{
		{
			name: "positional indent grows with index",
			node: Element("div",
				Element("h1", Text("a")),
				Element("h2", Text("b")),
				Element("h3", Text("c")),
			),
			expected: "<div>\n<h1>a\n</h1>\n <h2>b\n</h2>\n  <h3>c\n</h3>\n</div>",
		},
		{
			name: "list containers use two-space indent",
			node: Element("ul",
				Element("li", Text("a")),
				Element("li", Text("b")),
				Element("li", Text("c")),
			),
			expected: "<ul>\n  <li>a\n</li>\n  <li>b\n</li>\n  <li>c\n</li>\n</ul>",
		},
		{
			name: "scalar children mix with elements",
			node: Element("p",
				Text("before"),
				Element("br"),
			),
			expected: "<p>\nbefore\n <br>\n</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Serialize(ctx, tt.node)
			if got != tt.expected {
				t.Errorf("Serialize() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSerializeLinkComponentBecomesAnchor(t *testing.T) {
	s := newTestSerializer()
	ctx := context.Background()

	node := Component("router_components", "Link", Text("Click")).Set("href", "/x")
	got := s.Serialize(ctx, node)
	want := `<a href="/x">Click` + "\n</a>"
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestSerializeDoesNotMutateSourceTree(t *testing.T) {
	s := newTestSerializer()
	ctx := context.Background()

	node := Component("core_components", "Graph").SetStyle("color", "red")
	_ = s.Serialize(ctx, node)

	if node.Style.Has("height") {
		t.Error("Serialize() mutated the source node's style")
	}
	if len(node.Props) != 0 {
		t.Errorf("Serialize() mutated the source node's props: %v", node.Props)
	}
}
