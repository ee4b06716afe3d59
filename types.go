package htmlify

import (
	"strings"

	"github.com/yuin/goldmark"
)

// Default normalization constants.
const (
	// DefaultClassPrefix prefixes the CSS class derived for normalized
	// widget containers.
	DefaultClassPrefix = "ssr"

	// DefaultComponentHeight is the placeholder height for typical
	// widgets.
	DefaultComponentHeight = "50px"

	// LargeComponentHeight is the placeholder height for the large
	// widget types (graphs, data tables).
	LargeComponentHeight = "300px"
)

// defaultLargeTypes returns the widget types that get the large
// placeholder height.
func defaultLargeTypes() map[string]bool {
	return map[string]bool{
		"Graph":     true,
		"DataTable": true,
	}
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	classPrefix   string
	defaultHeight string
	largeHeight   string
	largeTypes    map[string]bool
	entryTemplate string
	markdown      markdownRenderer
}

// WithClassPrefix sets the prefix of the CSS class derived for
// normalized widgets. Panics if prefix is empty (programmer error).
func WithClassPrefix(prefix string) Option {
	if prefix == "" {
		panic("htmlify: WithClassPrefix prefix must not be empty")
	}
	return func(s *Service) {
		s.cfg.classPrefix = prefix
	}
}

// WithDefaultHeight sets the placeholder height for typical widgets.
// Panics if height is empty (programmer error).
func WithDefaultHeight(height string) Option {
	if height == "" {
		panic("htmlify: WithDefaultHeight height must not be empty")
	}
	return func(s *Service) {
		s.cfg.defaultHeight = height
	}
}

// WithLargeHeight sets the placeholder height for large widgets.
// Panics if height is empty (programmer error).
func WithLargeHeight(height string) Option {
	if height == "" {
		panic("htmlify: WithLargeHeight height must not be empty")
	}
	return func(s *Service) {
		s.cfg.largeHeight = height
	}
}

// WithLargeComponents replaces the set of widget types that get the
// large placeholder height.
func WithLargeComponents(types ...string) Option {
	return func(s *Service) {
		s.cfg.largeTypes = make(map[string]bool, len(types))
		for _, t := range types {
			s.cfg.largeTypes[t] = true
		}
	}
}

// WithEntryTemplate replaces the embedded entry fragment template. The
// template must contain the {%app_content%} marker. Panics if it does
// not (programmer error).
func WithEntryTemplate(template string) Option {
	if !strings.Contains(template, appContentMarker) {
		panic("htmlify: WithEntryTemplate template must contain " + appContentMarker)
	}
	return func(s *Service) {
		s.cfg.entryTemplate = template
	}
}

// WithMarkdownEngine injects a custom goldmark engine for markdown
// widgets. Passing nil selects raw passthrough (the degraded mode used
// when no engine is available).
func WithMarkdownEngine(md goldmark.Markdown) Option {
	return func(s *Service) {
		s.cfg.markdown = &goldmarkRenderer{md: md}
	}
}
