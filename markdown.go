package htmlify

import (
	"bytes"
	"context"
	"regexp"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-htmlify/internal/textutil"
)

// Precompiled regex patterns for the markdown rewrites.
var (
	// Whole-text greedy blockquote collapse. The leading .* is greedy,
	// so when several blockquote blocks are present only the last one
	// survives and surrounding text is dropped. Known quirk of the
	// format, kept for compatibility.
	blockquotePattern = regexp.MustCompile(`(?s).*<blockquote>\n\s{0,4}(.*?)</blockquote>.*`)

	// Typed-link pseudo-tags carrying href and children attributes.
	navLinkPattern      = regexp.MustCompile(`(?s)<navLink .*?/>`)
	navLinkHrefPattern  = regexp.MustCompile(`(?s)<navLink .*?href="(.*?)".*?/>`)
	navLinkChildPattern = regexp.MustCompile(`(?s)<navLink .*?children="(.*?)".*?/>`)

	// Permissive HTML tag matcher, from Regex Cookbook 2nd edition.
	// Captures the tag name; handles quoted and unquoted attribute
	// values and unterminated tags at end of input.
	htmlTagPattern = regexp.MustCompile(`(?i)</?([A-Za-z][^\s>/]*)(?:=\s*(?:"[^"]*"|'[^']*'|[^\s>]+)|[^>])*(?:>|$)`)

	// Bare http(s) URLs delimited by whitespace or text boundaries.
	bareURLPattern = regexp.MustCompile(`(\s|\n|^)(https?://.*?)($|\s)`)
)

// markdownRenderer abstracts markdown to HTML conversion.
type markdownRenderer interface {
	Render(ctx context.Context, text string) (string, error)
}

// goldmarkRenderer rewrites the framework's nonstandard inline
// constructs and delegates to goldmark. A nil engine degrades to raw
// passthrough instead of failing.
type goldmarkRenderer struct {
	md goldmark.Markdown
}

// newGoldmarkRenderer creates a goldmarkRenderer with the extension set
// matching the framework's markdown dialect: GFM tables and autolinks,
// footnotes, definition lists, smart quotes, hard line breaks, heading
// IDs, attribute lists, and fenced-code syntax highlighting.
func newGoldmarkRenderer() *goldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			extension.DefinitionList,
			extension.Typographer,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes keep the snapshot small
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithAttribute(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
			// Unsafe is required: the rewrites below pre-render anchor
			// tags and entity-escaped text that must pass through.
			html.WithUnsafe(),
		),
	)
	return &goldmarkRenderer{md: md}
}

// Render rewrites nonstandard constructs and converts the result to
// HTML. Conversion failures degrade to the raw input; only context
// cancellation is reported as an error. Conversion runs in a goroutine
// with select since goldmark doesn't natively support context.
func (g *goldmarkRenderer) Render(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if g.md == nil {
		return text, nil
	}

	prepared := prepareMarkdown(text)

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := g.md.Convert([]byte(prepared), &buf); err != nil {
			done <- result{err: err}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		if r.err != nil {
			// Degraded passthrough, not an error.
			return text, nil
		}
		return r.html, nil
	}
}

// prepareMarkdown applies the inline rewrites in order: blockquote
// flattening, typed-link conversion, stray tag escaping, bare URL
// autolinking, and a final dedent.
func prepareMarkdown(text string) string {
	text = collapseBlockquotes(text)
	text = rewriteNavLinks(text)
	text = escapeStrayTags(text)
	text = autolinkBareURLs(text)
	return textutil.Dedent(text)
}

// collapseBlockquotes flattens a <blockquote> block indented by up to
// four spaces into a markdown "> " quoted line.
func collapseBlockquotes(text string) string {
	return blockquotePattern.ReplaceAllString(text, "> $1")
}

// rewriteNavLinks replaces each <navLink href="..." children="..."/>
// pseudo-tag with markdown link syntax [children](href). Hrefs and
// children are paired positionally by occurrence order.
func rewriteNavLinks(text string) string {
	hrefs := navLinkHrefPattern.FindAllStringSubmatch(text, -1)
	children := navLinkChildPattern.FindAllStringSubmatch(text, -1)

	n := len(hrefs)
	if len(children) < n {
		n = len(children)
	}
	replacements := make([]string, n)
	for i := 0; i < n; i++ {
		replacements[i] = "[" + children[i][1] + "](" + hrefs[i][1] + ")"
	}

	// Split on the pseudo-tags, then stitch with the replacements.
	segments := navLinkPattern.Split(text, -1)
	var b strings.Builder
	for i, seg := range segments {
		b.WriteString(seg)
		if i < len(replacements) {
			b.WriteString(replacements[i])
		}
	}
	return b.String()
}

// escapeStrayTags converts remaining tag-like substrings to literal
// angle-bracket entities so the markdown converter renders them as
// visible text instead of markup.
func escapeStrayTags(text string) string {
	return htmlTagPattern.ReplaceAllString(text, "&lt;$1&gt;")
}

// autolinkBareURLs wraps bare http(s) URLs in anchor tags whose href
// and text both equal the URL.
func autolinkBareURLs(text string) string {
	return bareURLPattern.ReplaceAllString(text, `$1<a href="$2">$2</a>$3`)
}
