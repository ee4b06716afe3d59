package htmlify

import (
	"context"

	"github.com/alnah/go-htmlify/internal/assets"
)

// Compile-time interface implementation checks.
var (
	_ markupSerializer    = (*treeSerializer)(nil)
	_ componentNormalizer = (*containerNormalizer)(nil)
	_ markdownRenderer    = (*goldmarkRenderer)(nil)
)

// Service orchestrates the tree-to-markup pipeline: normalization,
// markdown rendering, serialization, and template injection.
type Service struct {
	cfg        serviceConfig
	markdown   markdownRenderer
	normalizer componentNormalizer
	serializer markupSerializer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithClassPrefix).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			classPrefix:   DefaultClassPrefix,
			defaultHeight: DefaultComponentHeight,
			largeHeight:   LargeComponentHeight,
			largeTypes:    defaultLargeTypes(),
			entryTemplate: assets.EntryFragment(),
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create the markdown renderer if not injected via options.
	s.markdown = s.cfg.markdown
	if s.markdown == nil {
		s.markdown = newGoldmarkRenderer()
	}

	s.normalizer = &containerNormalizer{
		cfg: normalizeConfig{
			classPrefix:   s.cfg.classPrefix,
			defaultHeight: s.cfg.defaultHeight,
			largeHeight:   s.cfg.largeHeight,
			largeTypes:    s.cfg.largeTypes,
		},
		markdown: s.markdown,
	}
	s.serializer = &treeSerializer{normalizer: s.normalizer}

	return s
}

// Render serializes a node tree to markup. Nil trees render to an
// empty string. The context is checked before the walk; the walk
// itself is a pure in-memory transformation.
func (s *Service) Render(ctx context.Context, node *Node) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.serializer.Serialize(ctx, node), nil
}

// RenderMarkdown rewrites the framework's nonstandard markdown
// constructs and converts the text to HTML. Conversion failures
// degrade to the raw input; only context cancellation errors.
func (s *Service) RenderMarkdown(ctx context.Context, text string) (string, error) {
	if s.markdown == nil {
		return text, nil
	}
	return s.markdown.Render(ctx, text)
}
