// Package htmlify serializes a reactive web application's component tree
// into static HTML markup so that search engine crawlers see real content
// instead of an empty mount point.
//
// # Quick Start
//
// Build a service, point it at the app, and inject:
//
//	svc := htmlify.New()
//
//	app := &htmlify.App{
//	    Layout: htmlify.Element("div",
//	        htmlify.Element("h1", htmlify.Text("hello, world")),
//	        htmlify.Element("h2", htmlify.Text("How are you today?")),
//	    ),
//	    IndexString: indexTemplate,
//	}
//
//	if err := svc.Htmlify(ctx, app, nil); err != nil {
//	    log.Fatal(err)
//	}
//
// After the call app.AppEntry holds the entry-point fragment with the
// serialized layout. Pass structured data (a map, serialized as JSON-LD,
// or a raw string) as the third argument to have it spliced before
// </head> in app.IndexString.
//
// # Serialization Pipeline
//
// Rendering a tree follows these stages:
//
//  1. Component normalization (widgets become placeholder containers
//     with a derived CSS class and a default height)
//  2. Markdown rendering for markdown-typed components via Goldmark
//     (GFM, footnotes, definition lists, syntax highlighting)
//  3. Recursive tree-to-markup serialization (attributes, styles,
//     boolean attributes, positional child indentation)
//  4. Entry fragment and JSON-LD injection into the app's template strings
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := htmlify.New(
//	    htmlify.WithClassPrefix("seo"),
//	    htmlify.WithLargeComponents("Graph", "DataTable", "Map"),
//	    htmlify.WithDefaultHeight("40px"),
//	)
//
// The service holds no mutable state and is safe for reuse across calls;
// Htmlify mutates only the App passed to it.
package htmlify
