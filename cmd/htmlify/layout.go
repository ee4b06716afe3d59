package main

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	htmlify "github.com/alnah/go-htmlify"
	"github.com/alnah/go-htmlify/internal/yamlutil"
)

// ErrLayoutParse indicates a layout file that does not describe a
// valid node tree.
var ErrLayoutParse = errors.New("failed to parse layout")

// decodeLayout decodes layout YAML into a node tree. Each mapping is a
// node: "tag" for a plain element or "component" plus "namespace" for a
// framework widget, with optional "props", "style", and "children".
// Sequence entries that are not mappings become scalar leaves. Ordered
// decoding keeps attribute and style declarations in file order.
func decodeLayout(data []byte) (*htmlify.Node, error) {
	var root any
	if err := yamlutil.UnmarshalOrdered(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLayoutParse, err)
	}

	ms, ok := root.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: top level must be a mapping, got %T", ErrLayoutParse, root)
	}
	return buildNode(ms)
}

// buildNode converts one mapping into a node.
func buildNode(ms yaml.MapSlice) (*htmlify.Node, error) {
	var (
		tag       string
		component string
		namespace string
		node      *htmlify.Node
	)

	// First pass resolves the node identity so props and children can
	// attach to it in a second pass.
	for _, item := range ms {
		key, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("%w: non-string key %v", ErrLayoutParse, item.Key)
		}
		switch key {
		case "tag":
			tag = stringValue(item.Value)
		case "component":
			component = stringValue(item.Value)
		case "namespace":
			namespace = stringValue(item.Value)
		case "props", "style", "children":
			// second pass
		default:
			return nil, fmt.Errorf("%w: unknown key %q", ErrLayoutParse, key)
		}
	}

	switch {
	case tag != "" && component != "":
		return nil, fmt.Errorf("%w: node has both tag %q and component %q", ErrLayoutParse, tag, component)
	case tag != "":
		node = htmlify.Element(tag)
	case component != "":
		node = htmlify.Component(namespace, component)
	default:
		return nil, fmt.Errorf("%w: node needs a tag or a component", ErrLayoutParse)
	}

	for _, item := range ms {
		key := item.Key.(string)
		switch key {
		case "props":
			if err := applyPairs(node, item.Value, key, (*htmlify.Node).Set); err != nil {
				return nil, err
			}
		case "style":
			if err := applyPairs(node, item.Value, key, (*htmlify.Node).SetStyle); err != nil {
				return nil, err
			}
		case "children":
			children, err := buildChildren(item.Value)
			if err != nil {
				return nil, err
			}
			node.Children = children
		}
	}

	return node, nil
}

// applyPairs walks a nested mapping and applies each pair via set,
// preserving file order.
func applyPairs(node *htmlify.Node, value any, key string, set func(*htmlify.Node, string, any) *htmlify.Node) error {
	if value == nil {
		return nil
	}
	ms, ok := value.(yaml.MapSlice)
	if !ok {
		return fmt.Errorf("%w: %s must be a mapping, got %T", ErrLayoutParse, key, value)
	}
	for _, item := range ms {
		k, ok := item.Key.(string)
		if !ok {
			return fmt.Errorf("%w: non-string %s key %v", ErrLayoutParse, key, item.Key)
		}
		set(node, k, item.Value)
	}
	return nil
}

// buildChildren converts a children sequence into nodes. Mappings
// recurse; everything else becomes a scalar leaf.
func buildChildren(value any) ([]*htmlify.Node, error) {
	if value == nil {
		return nil, nil
	}
	seq, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: children must be a sequence, got %T", ErrLayoutParse, value)
	}

	children := make([]*htmlify.Node, 0, len(seq))
	for _, entry := range seq {
		if ms, ok := entry.(yaml.MapSlice); ok {
			child, err := buildNode(ms)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
			continue
		}
		children = append(children, htmlify.Scalar(entry))
	}
	return children, nil
}

// stringValue coerces a scalar mapping value to a string.
func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
