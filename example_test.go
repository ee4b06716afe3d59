package htmlify_test

import (
	"context"
	"fmt"
	"log"

	htmlify "github.com/alnah/go-htmlify"
)

func ExampleService_Render() {
	svc := htmlify.New(htmlify.WithMarkdownEngine(nil))

	tree := htmlify.Element("div",
		htmlify.Element("h1", htmlify.Text("Hello")),
	)

	markup, err := svc.Render(context.Background(), tree)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(markup)
	// Output:
	// <div><h1>Hello
	// </h1>
	// </div>
}

func ExampleService_Htmlify() {
	svc := htmlify.New(
		htmlify.WithMarkdownEngine(nil),
		htmlify.WithEntryTemplate("<main>{%app_content%}</main>"),
	)

	app := &htmlify.App{
		Layout:      htmlify.Element("h1", htmlify.Text("Hi")),
		IndexString: "<head></head><body>{%app_entry%}</body>",
	}
	structured := map[string]any{"@type": "Product"}

	if err := svc.Htmlify(context.Background(), app, structured); err != nil {
		log.Fatal(err)
	}
	fmt.Println(app.Page())
	// Output:
	// <head><script type="application/ld+json">
	// {
	//    "@type": "Product"
	// }
	// </script>
	//     </head><body><main><h1>Hi
	// </h1></main></body>
}
