package htmlify

import "testing"

func TestTranslateAttrKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{"className renamed", "className", "class"},
		{"classname renamed", "classname", "class"},
		{"other keys unchanged", "href", "href"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateAttrKey(tt.key)
			if got != tt.expected {
				t.Errorf("translateAttrKey(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestTranslateAttrValue(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"bool true lowercased", true, "true"},
		{"bool false lowercased", false, "false"},
		{"string True lowercased", "True", "true"},
		{"string False lowercased", "False", "false"},
		{"plain string unchanged", "main", "main"},
		{"number coerced", 3, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateAttrValue(tt.value)
			if got != tt.expected {
				t.Errorf("translateAttrValue(%v) = %q, want %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{"nil", nil, false},
		{"true", true, true},
		{"false", false, false},
		{"empty string", "", false},
		{"non-empty string", "x", true},
		{"zero int", 0, false},
		{"nonzero int", 7, true},
		{"zero float", 0.0, false},
		{"nonzero float", 0.5, true},
		{"other types default true", struct{}{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isTruthy(tt.value)
			if got != tt.expected {
				t.Errorf("isTruthy(%v) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestVoidTagsHaveNoListOverlap(t *testing.T) {
	for tag := range listTags {
		if voidTags[tag] {
			t.Errorf("tag %q is both void and list container", tag)
		}
	}
}
