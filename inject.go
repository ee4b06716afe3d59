package htmlify

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Template placeholders.
const (
	// appContentMarker marks where the serialized tree goes in the
	// entry fragment template.
	appContentMarker = "{%app_content%}"

	// appEntryMarker marks where the entry fragment goes in an index
	// page template.
	appEntryMarker = "{%app_entry%}"
)

// headCloseTag is the splice point for structured data.
const headCloseTag = "</head>"

// App is the application object the injector writes into. The two
// template strings are owned by the hosting framework; Htmlify rewrites
// them in place. Callers are responsible for startup-time, single
// threaded invocation.
type App struct {
	// Layout is the root of the component tree to snapshot.
	Layout *Node

	// IndexString is the full index page template. Structured data is
	// spliced in just before its closing </head> tag.
	IndexString string

	// AppEntry is the entry-point fragment: a loading placeholder
	// followed by the serialized layout.
	AppEntry string
}

// Page substitutes the entry fragment into the index template and
// returns the assembled page. Useful for emitting a standalone
// snapshot; frameworks that own their own assembly can ignore it.
func (a *App) Page() string {
	return strings.ReplaceAll(a.IndexString, appEntryMarker, a.AppEntry)
}

// Htmlify serializes app.Layout into app.AppEntry and, when structured
// data is given, splices it before </head> in app.IndexString. A map is
// serialized as a JSON-LD script block; a string is spliced verbatim;
// any other type is rejected. Each call re-splices into the current
// template strings, so the entry fragment always reflects the latest
// layout.
func (s *Service) Htmlify(ctx context.Context, app *App, structured any) error {
	if app == nil {
		return ErrNilApp
	}

	markup, err := s.Render(ctx, app.Layout)
	if err != nil {
		return err
	}
	app.AppEntry = strings.Replace(s.cfg.entryTemplate, appContentMarker, markup, 1)

	if structured == nil {
		return nil
	}
	block, err := structuredDataBlock(structured)
	if err != nil {
		return err
	}
	app.IndexString = strings.ReplaceAll(app.IndexString, headCloseTag, block+"\n    "+headCloseTag)
	return nil
}

// structuredDataBlock renders the head splice for structured data:
// maps become a JSON-LD script block, strings pass through verbatim.
func structuredDataBlock(structured any) (string, error) {
	if s, ok := structured.(string); ok {
		return s, nil
	}
	if reflect.ValueOf(structured).Kind() != reflect.Map {
		return "", fmt.Errorf("%w: got %T", ErrInvalidStructuredData, structured)
	}
	data, err := json.MarshalIndent(structured, "", "   ")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidStructuredData, err)
	}
	return "<script type=\"application/ld+json\">\n" + string(data) + "\n</script>", nil
}
